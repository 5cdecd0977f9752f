package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/google/uuid"
)

type CardsR struct {
	db QueryI
}

func NewCardsRepository(db QueryI) *CardsR {
	return &CardsR{db: db}
}

// OwnedCard fetches a card only if its collection belongs to the given
// user. Every external card operation goes through this single
// authorization-aware query so the ownership check cannot be forgotten.
func (c *CardsR) OwnedCard(ctx context.Context, userID, cardID uuid.UUID) (models.Card, error) {
	query := `
		SELECT cd.id, cd.collection_id, cd.front_text, cd.back_text,
			cd.last_reviewed_at, cd.next_review_at, cd.last_difficulty,
			cd.review_count, cd.created_at, cd.updated_at
		FROM cards cd
		JOIN collections cl ON cl.id = cd.collection_id
		WHERE cd.id = $1 AND cl.user_id = $2
	`

	var card models.Card
	err := c.db.GetContext(ctx, &card, query, cardID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Card{}, ErrNotFound
		}
		return models.Card{}, fmt.Errorf("failed to get card %s: %w", cardID, err)
	}

	return card, nil
}

// CollectionCards returns all cards of a collection ordered by creation
// time. The caller must have verified collection ownership already.
func (c *CardsR) CollectionCards(ctx context.Context, collectionID uuid.UUID) ([]models.Card, error) {
	query := `
		SELECT id, collection_id, front_text, back_text,
			last_reviewed_at, next_review_at, last_difficulty,
			review_count, created_at, updated_at
		FROM cards
		WHERE collection_id = $1
		ORDER BY created_at
	`

	cards := make([]models.Card, 0)
	if err := c.db.SelectContext(ctx, &cards, query, collectionID); err != nil {
		return nil, fmt.Errorf("failed to list cards of collection %s: %w", collectionID, err)
	}

	return cards, nil
}

func (c *CardsR) CreateCard(ctx context.Context, collectionID uuid.UUID, input models.NewCardInput) (models.Card, error) {
	query := `
		INSERT INTO cards (collection_id, front_text, back_text)
		VALUES ($1, $2, $3)
		RETURNING id, collection_id, front_text, back_text,
			last_reviewed_at, next_review_at, last_difficulty,
			review_count, created_at, updated_at
	`

	var card models.Card
	err := c.db.GetContext(ctx, &card, query, collectionID, input.FrontText, input.BackText)
	if err != nil {
		return models.Card{}, fmt.Errorf("failed to create card: %w", err)
	}

	return card, nil
}

// CreateCardsBulk inserts all cards in one statement. Used by bulk import.
func (c *CardsR) CreateCardsBulk(ctx context.Context, collectionID uuid.UUID, inputs []models.NewCardInput) error {
	if len(inputs) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(inputs))
	args := make([]any, 0, len(inputs)*3)
	for i, input := range inputs {
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3))
		args = append(args, collectionID, input.FrontText, input.BackText)
	}

	query := `INSERT INTO cards (collection_id, front_text, back_text) VALUES ` +
		strings.Join(placeholders, ", ")

	if _, err := c.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to bulk create cards: %w", err)
	}

	return nil
}

// UpdateSchedule writes a card's scheduling state unconditionally. The
// supplied value replaces the prior one; last-writer-wins is acceptable
// because a card's schedule is a single-owner, human-paced field.
func (c *CardsR) UpdateSchedule(ctx context.Context, card models.Card) error {
	query := `
		UPDATE cards
		SET last_reviewed_at = $2,
			next_review_at = $3,
			last_difficulty = $4,
			review_count = $5,
			updated_at = $6
		WHERE id = $1
	`

	_, err := c.db.ExecContext(ctx, query,
		card.ID, card.LastReviewedAt, card.NextReviewAt, card.LastDifficulty,
		card.ReviewCount, card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update schedule of card %s: %w", card.ID, err)
	}

	return nil
}

func (c *CardsR) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete card %s: %w", cardID, err)
	}

	return nil
}
