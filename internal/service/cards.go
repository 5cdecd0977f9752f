package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCardTextRequired  = errors.New("card front and back text are required")
	ErrNoCardsProvided   = errors.New("no cards provided")
	ErrInvalidDifficulty = errors.New("difficulty must be hard, medium or easy")
)

type CardS struct {
	cards       CardRI
	collections CollectionRI
	users       UserRI
	log         *zap.Logger
	now         func() time.Time
}

func NewCardService(cards CardRI, collections CollectionRI, users UserRI, log *zap.Logger, now func() time.Time) *CardS {
	return &CardS{
		cards:       cards,
		collections: collections,
		users:       users,
		log:         log,
		now:         now,
	}
}

func (c *CardS) CreateCard(ctx context.Context, userID, collectionID uuid.UUID, input models.NewCardInput) (models.Card, error) {
	input.FrontText = strings.TrimSpace(input.FrontText)
	input.BackText = strings.TrimSpace(input.BackText)
	if input.FrontText == "" || input.BackText == "" {
		return models.Card{}, ErrCardTextRequired
	}

	if _, err := c.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return models.Card{}, err
	}

	return c.cards.CreateCard(ctx, collectionID, input)
}

// CreateCardsBulk imports several cards into a collection at once. One
// ownership check covers the whole batch.
func (c *CardS) CreateCardsBulk(ctx context.Context, userID, collectionID uuid.UUID, inputs []models.NewCardInput) error {
	if len(inputs) == 0 {
		return ErrNoCardsProvided
	}
	for i := range inputs {
		inputs[i].FrontText = strings.TrimSpace(inputs[i].FrontText)
		inputs[i].BackText = strings.TrimSpace(inputs[i].BackText)
		if inputs[i].FrontText == "" || inputs[i].BackText == "" {
			return ErrCardTextRequired
		}
	}

	if _, err := c.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return err
	}

	return c.cards.CreateCardsBulk(ctx, collectionID, inputs)
}

func (c *CardS) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	if _, err := c.cards.OwnedCard(ctx, userID, cardID); err != nil {
		return err
	}

	return c.cards.DeleteCard(ctx, cardID)
}

// ReviewCard applies the review transition: the card is rescheduled
// according to the user's interval policy and the chosen difficulty.
// Ownership is verified once here, not again inside the transition.
func (c *CardS) ReviewCard(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error) {
	if !difficulty.Valid() {
		return models.Card{}, ErrInvalidDifficulty
	}

	card, err := c.cards.OwnedCard(ctx, userID, cardID)
	if err != nil {
		return models.Card{}, err
	}

	user, err := c.users.UserByID(ctx, userID)
	if err != nil {
		return models.Card{}, err
	}

	updated := scheduler.Review(card, difficulty, user.ReviewIntervals, c.now())
	if err := c.cards.UpdateSchedule(ctx, updated); err != nil {
		return models.Card{}, err
	}

	c.log.Debug("card reviewed",
		zap.String("card_id", cardID.String()),
		zap.String("difficulty", difficulty.String()),
		zap.Timep("next_review_at", updated.NextReviewAt))

	return updated, nil
}

// ResetCardProgress returns a card to the never-reviewed state. Sibling
// cards are unaffected; resetting an already-new card is a no-op.
func (c *CardS) ResetCardProgress(ctx context.Context, userID, cardID uuid.UUID) (models.Card, error) {
	card, err := c.cards.OwnedCard(ctx, userID, cardID)
	if err != nil {
		return models.Card{}, err
	}

	updated := scheduler.Reset(card, c.now())
	if err := c.cards.UpdateSchedule(ctx, updated); err != nil {
		return models.Card{}, err
	}

	return updated, nil
}
