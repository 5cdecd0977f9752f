package server

import (
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handlers) CreateCard(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	var req models.NewCardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	card, err := h.services.CreateCard(c.Request.Context(), currentUserID(c), collectionID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

type bulkCreateRequest struct {
	Cards []models.NewCardInput `json:"cards"`
}

func (h *Handlers) CreateCardsBulk(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	var req bulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.services.CreateCardsBulk(c.Request.Context(), currentUserID(c), collectionID, req.Cards); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": len(req.Cards)})
}

func (h *Handlers) DeleteCard(c *gin.Context) {
	cardID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.DeleteCard(c.Request.Context(), currentUserID(c), cardID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

type reviewRequest struct {
	Difficulty string `json:"difficulty"`
}

func (h *Handlers) ReviewCard(c *gin.Context) {
	cardID, ok := pathID(c)
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	card, err := h.services.ReviewCard(c.Request.Context(), currentUserID(c), cardID, difficulty)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handlers) ResetCardProgress(c *gin.Context) {
	cardID, ok := pathID(c)
	if !ok {
		return
	}

	card, err := h.services.ResetCardProgress(c.Request.Context(), currentUserID(c), cardID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}
