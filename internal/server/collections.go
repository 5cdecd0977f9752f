package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createCollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handlers) CreateCollection(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	collection, err := h.services.CreateCollection(c.Request.Context(), currentUserID(c), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collection)
}

func (h *Handlers) ListCollections(c *gin.Context) {
	overviews, err := h.services.Collections(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"collections": overviews})
}

func (h *Handlers) ListCollectionCards(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	cards, err := h.services.CollectionCards(c.Request.Context(), currentUserID(c), collectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

func (h *Handlers) CollectionStats(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	stats, err := h.services.CollectionStats(c.Request.Context(), currentUserID(c), collectionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handlers) DeleteCollection(c *gin.Context) {
	collectionID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.DeleteCollection(c.Request.Context(), currentUserID(c), collectionID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
