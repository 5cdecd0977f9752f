package server

import (
	"context"
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserSI interface {
	Me(ctx context.Context, userID uuid.UUID) (models.User, error)
	SignIn(ctx context.Context, user models.User) (models.User, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error
	UpdateReviewIntervals(ctx context.Context, userID uuid.UUID, in scheduler.IntervalInput) (models.ReviewIntervals, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type CollectionSI interface {
	CreateCollection(ctx context.Context, userID uuid.UUID, name, description string) (models.Collection, error)
	Collections(ctx context.Context, userID uuid.UUID) ([]models.CollectionOverview, error)
	CollectionCards(ctx context.Context, userID, collectionID uuid.UUID) ([]models.Card, error)
	CollectionStats(ctx context.Context, userID, collectionID uuid.UUID) (models.CollectionStats, error)
	DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error
}

type CardSI interface {
	CreateCard(ctx context.Context, userID, collectionID uuid.UUID, input models.NewCardInput) (models.Card, error)
	CreateCardsBulk(ctx context.Context, userID, collectionID uuid.UUID, inputs []models.NewCardInput) error
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
	ReviewCard(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error)
	ResetCardProgress(ctx context.Context, userID, cardID uuid.UUID) (models.Card, error)
}

type StudySI interface {
	DueCards(ctx context.Context, userID, collectionID uuid.UUID) ([]models.Card, error)
	StartSession(ctx context.Context, userID, collectionID uuid.UUID, all bool) (*session.Session, error)
	ActiveSession(userID uuid.UUID) (*session.Session, error)
	RecordDifficulty(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error)
	Advance(userID uuid.UUID) (bool, error)
	Retreat(userID uuid.UUID) (bool, error)
	RestartSession(userID uuid.UUID) error
	CompleteStudySession(ctx context.Context, userID, collectionID uuid.UUID, reviewedCardIDs []uuid.UUID) (session.Summary, error)
}

type ServiceI interface {
	UserSI
	CollectionSI
	CardSI
	StudySI
}

type Handlers struct {
	services ServiceI
	log      *zap.Logger
}

func NewHandlers(services ServiceI, log *zap.Logger) *Handlers {
	return &Handlers{services: services, log: log}
}

// pathID parses the :id path segment as a uuid; the bool reports success
// and on failure a 400 response has already been written.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
