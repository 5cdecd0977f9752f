package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single front/back flashcard inside a collection. The scheduling
// fields are nil/zero until the card is reviewed for the first time; a nil
// NextReviewAt means the card is immediately due.
type Card struct {
	ID             uuid.UUID   `db:"id" json:"id"`
	CollectionID   uuid.UUID   `db:"collection_id" json:"collectionId"`
	FrontText      string      `db:"front_text" json:"frontText"`
	BackText       string      `db:"back_text" json:"backText"`
	LastReviewedAt *time.Time  `db:"last_reviewed_at" json:"lastReviewedAt"`
	NextReviewAt   *time.Time  `db:"next_review_at" json:"nextReviewAt"`
	LastDifficulty *Difficulty `db:"last_difficulty" json:"lastDifficulty"`
	ReviewCount    int         `db:"review_count" json:"reviewCount"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time   `db:"updated_at" json:"updatedAt"`
}

// Reviewed reports whether the card has ever been reviewed.
func (c Card) Reviewed() bool {
	return c.LastReviewedAt != nil
}

// NewCardInput is the content for a card to be created.
type NewCardInput struct {
	FrontText string `json:"frontText" validate:"required"`
	BackText  string `json:"backText" validate:"required"`
}
