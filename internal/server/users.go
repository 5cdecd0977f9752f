package server

import (
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/gin-gonic/gin"
)

type signInRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// SignIn upserts the profile for the authenticated identity. First sign-in
// creates the account with the default interval policy; later calls only
// refresh the profile fields.
func (h *Handlers) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.services.SignIn(c.Request.Context(), models.User{
		ID:    currentUserID(c),
		Email: req.Email,
		Name:  req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Handlers) Me(c *gin.Context) {
	user, err := h.services.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateSettingsRequest struct {
	DisplayName string `json:"displayName"`
}

func (h *Handlers) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.services.UpdateDisplayName(c.Request.Context(), currentUserID(c), req.DisplayName); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handlers) UpdateReviewIntervals(c *gin.Context) {
	var req scheduler.IntervalInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	intervals, err := h.services.UpdateReviewIntervals(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, intervals)
}

func (h *Handlers) DeleteAccount(c *gin.Context) {
	if err := h.services.DeleteAccount(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
