package service

import (
	"context"
	"errors"
	"strings"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDisplayNameRequired = errors.New("display name is required")

type UserS struct {
	repo UserRI
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{repo: repo, log: log}
}

func (u *UserS) Me(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return u.repo.UserByID(ctx, userID)
}

// SignIn creates the account on first sign-in and refreshes profile fields
// afterwards. New accounts get the default review intervals.
func (u *UserS) SignIn(ctx context.Context, user models.User) (models.User, error) {
	saved, err := u.repo.UpsertUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	u.log.Info("user signed in", zap.String("user_id", saved.ID.String()))

	return saved, nil
}

func (u *UserS) UpdateDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return ErrDisplayNameRequired
	}

	return u.repo.UpdateDisplayName(ctx, userID, displayName)
}

// UpdateReviewIntervals validates and persists the user's interval policy.
// Nothing is written when validation fails.
func (u *UserS) UpdateReviewIntervals(ctx context.Context, userID uuid.UUID, in scheduler.IntervalInput) (models.ReviewIntervals, error) {
	intervals, err := scheduler.ValidateIntervals(in)
	if err != nil {
		return models.ReviewIntervals{}, err
	}

	if err := u.repo.UpdateReviewIntervals(ctx, userID, intervals); err != nil {
		return models.ReviewIntervals{}, err
	}

	u.log.Info("review intervals updated",
		zap.String("user_id", userID.String()),
		zap.Int("hard_minutes", intervals.HardMinutes),
		zap.Int("medium_minutes", intervals.MediumMinutes),
		zap.Int("easy_minutes", intervals.EasyMinutes))

	return intervals, nil
}

// DeleteAccount removes the user; collections and cards cascade away.
func (u *UserS) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return u.repo.DeleteUser(ctx, userID)
}
