package service

import (
	"context"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserRI interface {
	UserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpsertUser(ctx context.Context, user models.User) (models.User, error)
	UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error
	UpdateReviewIntervals(ctx context.Context, userID uuid.UUID, intervals models.ReviewIntervals) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type CollectionRI interface {
	OwnedCollection(ctx context.Context, userID, collectionID uuid.UUID) (models.Collection, error)
	UserCollections(ctx context.Context, userID uuid.UUID) ([]models.Collection, error)
	CreateCollection(ctx context.Context, userID uuid.UUID, name, description string) (models.Collection, error)
	DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error
}

type CardRI interface {
	OwnedCard(ctx context.Context, userID, cardID uuid.UUID) (models.Card, error)
	CollectionCards(ctx context.Context, collectionID uuid.UUID) ([]models.Card, error)
	CreateCard(ctx context.Context, collectionID uuid.UUID, input models.NewCardInput) (models.Card, error)
	CreateCardsBulk(ctx context.Context, collectionID uuid.UUID, inputs []models.NewCardInput) error
	UpdateSchedule(ctx context.Context, card models.Card) error
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

type RepositoryI interface {
	UserRI
	CollectionRI
	CardRI
}

// SessionStoreI keeps the active study session per user between requests.
type SessionStoreI interface {
	SetSession(userID uuid.UUID, s *session.Session)
	Session(userID uuid.UUID) (*session.Session, bool)
	DeleteSession(userID uuid.UUID)
}

type Service struct {
	*UserS
	*CollectionS
	*CardS
	*StudyS
}

func InitServices(repo RepositoryI, sessions SessionStoreI, log *zap.Logger) *Service {
	now := time.Now

	return &Service{
		UserS:       NewUserService(repo, log),
		CollectionS: NewCollectionService(repo, repo, log, now),
		CardS:       NewCardService(repo, repo, repo, log, now),
		StudyS:      NewStudyService(repo, repo, repo, sessions, log, now),
	}
}
