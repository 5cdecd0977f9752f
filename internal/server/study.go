package server

import (
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handlers) DueCards(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	cards, err := h.services.DueCards(c.Request.Context(), currentUserID(c), collectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *Handlers) StartSession(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	all := c.Query("all") == "true"

	sess, err := h.services.StartSession(c.Request.Context(), currentUserID(c), collectionID, all)
	if err != nil {
		respondError(c, err)
		return
	}

	position, total := sess.Progress()
	c.JSON(http.StatusCreated, gin.H{
		"card":     sess.Current(),
		"position": position,
		"total":    total,
	})
}

func (h *Handlers) CurrentCard(c *gin.Context) {
	sess, err := h.services.ActiveSession(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	card := sess.Current()
	position, total := sess.Progress()
	c.JSON(http.StatusOK, gin.H{
		"card":     card,
		"position": position,
		"total":    total,
		"reviewed": sess.Reviewed(card.ID),
	})
}

type recordDifficultyRequest struct {
	CardID     uuid.UUID `json:"cardId"`
	Difficulty string    `json:"difficulty"`
}

// RecordDifficulty rates the current card in the active session; the
// session auto-advances after a successful rating. Repeating a card in the
// same sitting is rejected with 409 and changes nothing.
func (h *Handlers) RecordDifficulty(c *gin.Context) {
	var req recordDifficultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	card, err := h.services.RecordDifficulty(c.Request.Context(), currentUserID(c), req.CardID, difficulty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handlers) AdvanceSession(c *gin.Context) {
	moved, err := h.services.Advance(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": moved})
}

func (h *Handlers) RetreatSession(c *gin.Context) {
	moved, err := h.services.Retreat(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"moved": moved})
}

func (h *Handlers) RestartSession(c *gin.Context) {
	if err := h.services.RestartSession(currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type completeSessionRequest struct {
	ReviewedCardIDs []uuid.UUID `json:"reviewedCardIds"`
}

func (h *Handlers) CompleteSession(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	var req completeSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	summary, err := h.services.CompleteStudySession(c.Request.Context(), currentUserID(c), collectionID, req.ReviewedCardIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
