package server

import (
	"errors"
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/repository"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/arthur12320/flash-cards-simple/internal/service"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain errors onto HTTP statuses. Not-found and
// not-owned are the same 404 on purpose.
func respondError(c *gin.Context, err error) {
	var cfgErr *scheduler.ConfigError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: cfgErr.Error()})
	case errors.Is(err, session.ErrDuplicateReview):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, session.ErrSessionCompleted):
		c.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoActiveSession),
		errors.Is(err, session.ErrNoCards),
		errors.Is(err, session.ErrCardNotInSession):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrCollectionNameRequired),
		errors.Is(err, service.ErrCardTextRequired),
		errors.Is(err, service.ErrNoCardsProvided),
		errors.Is(err, service.ErrDisplayNameRequired),
		errors.Is(err, service.ErrInvalidDifficulty):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}
