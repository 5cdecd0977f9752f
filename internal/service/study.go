package service

import (
	"context"
	"errors"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrNoActiveSession = errors.New("no active study session")

type StudyS struct {
	cards       CardRI
	collections CollectionRI
	users       UserRI
	sessions    SessionStoreI
	log         *zap.Logger
	now         func() time.Time
}

func NewStudyService(cards CardRI, collections CollectionRI, users UserRI, sessions SessionStoreI, log *zap.Logger, now func() time.Time) *StudyS {
	return &StudyS{
		cards:       cards,
		collections: collections,
		users:       users,
		sessions:    sessions,
		log:         log,
		now:         now,
	}
}

// DueCards returns the collection's cards eligible for review right now,
// new cards first, then by how overdue they are. Re-invoking re-evaluates
// against a fresh clock reading.
func (s *StudyS) DueCards(ctx context.Context, userID, collectionID uuid.UUID) ([]models.Card, error) {
	if _, err := s.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	cards, err := s.cards.CollectionCards(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	return scheduler.DueCards(cards, s.now()), nil
}

// StartSession begins a study sitting over the collection's due cards, or
// over every card when all is set. The selected sequence is fixed for the
// whole sitting; a new session for the same user replaces any previous one.
func (s *StudyS) StartSession(ctx context.Context, userID, collectionID uuid.UUID, all bool) (*session.Session, error) {
	if _, err := s.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	cards, err := s.cards.CollectionCards(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if !all {
		cards = scheduler.DueCards(cards, s.now())
	}

	sess, err := session.New(collectionID, cards)
	if err != nil {
		return nil, err
	}
	s.sessions.SetSession(userID, sess)

	s.log.Info("study session started",
		zap.String("user_id", userID.String()),
		zap.String("collection_id", collectionID.String()),
		zap.Int("cards", len(cards)),
		zap.Bool("all", all))

	return sess, nil
}

// ActiveSession returns the user's current sitting.
func (s *StudyS) ActiveSession(userID uuid.UUID) (*session.Session, error) {
	sess, ok := s.sessions.Session(userID)
	if !ok {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// RecordDifficulty rates the card within the active session and applies the
// review transition. A card already rated this sitting fails with
// session.ErrDuplicateReview and nothing changes; the schedule written by
// the first rating stands. Every guard runs before the card's schedule is
// touched, so a rejected rating never persists anything.
func (s *StudyS) RecordDifficulty(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error) {
	if !difficulty.Valid() {
		return models.Card{}, ErrInvalidDifficulty
	}

	sess, ok := s.sessions.Session(userID)
	if !ok {
		return models.Card{}, ErrNoActiveSession
	}
	if sess.Completed() {
		return models.Card{}, session.ErrSessionCompleted
	}
	if sess.Reviewed(cardID) {
		return models.Card{}, session.ErrDuplicateReview
	}
	if !sess.Contains(cardID) {
		return models.Card{}, session.ErrCardNotInSession
	}

	card, err := s.cards.OwnedCard(ctx, userID, cardID)
	if err != nil {
		return models.Card{}, err
	}

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		return models.Card{}, err
	}

	updated := scheduler.Review(card, difficulty, user.ReviewIntervals, s.now())
	if err := s.cards.UpdateSchedule(ctx, updated); err != nil {
		return models.Card{}, err
	}

	if err := sess.MarkReviewed(cardID, difficulty); err != nil {
		return models.Card{}, err
	}
	sess.Advance()

	return updated, nil
}

// Advance moves the sitting to the next card; false at the last card.
func (s *StudyS) Advance(userID uuid.UUID) (bool, error) {
	sess, ok := s.sessions.Session(userID)
	if !ok {
		return false, ErrNoActiveSession
	}
	return sess.Advance(), nil
}

// Retreat moves the sitting back one card; false at the first card.
func (s *StudyS) Retreat(userID uuid.UUID) (bool, error) {
	sess, ok := s.sessions.Session(userID)
	if !ok {
		return false, ErrNoActiveSession
	}
	return sess.Retreat(), nil
}

// RestartSession rewinds the sitting to the first card and clears the
// in-session ratings. Persisted card schedules stay as they are.
func (s *StudyS) RestartSession(userID uuid.UUID) error {
	sess, ok := s.sessions.Session(userID)
	if !ok {
		return ErrNoActiveSession
	}
	return sess.Restart()
}

// CompleteStudySession finishes the sitting over the given collection and
// reports how many cards were reviewed. Card schedules were already
// persisted one by one as they were rated; completion only confirms the
// sitting and releases the session.
func (s *StudyS) CompleteStudySession(ctx context.Context, userID, collectionID uuid.UUID, reviewedCardIDs []uuid.UUID) (session.Summary, error) {
	if _, err := s.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return session.Summary{}, err
	}

	summary := session.Summary{
		ReviewedCount:   len(reviewedCardIDs),
		ReviewedCardIDs: reviewedCardIDs,
	}

	if sess, ok := s.sessions.Session(userID); ok && sess.CollectionID == collectionID {
		summary = sess.Finish()
		s.sessions.DeleteSession(userID)
	}

	s.log.Info("study session completed",
		zap.String("user_id", userID.String()),
		zap.String("collection_id", collectionID.String()),
		zap.Int("reviewed", summary.ReviewedCount))

	return summary, nil
}
