package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection groups cards and is the ownership boundary: every card
// operation verifies the acting user owns the card's collection.
type Collection struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"userId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CollectionStats is a point-in-time summary of a collection's cards.
// Always holds ReviewedCards + NewCards == TotalCards.
type CollectionStats struct {
	TotalCards    int `json:"totalCards"`
	ReviewedCards int `json:"reviewedCards"`
	DueCards      int `json:"dueCards"`
	NewCards      int `json:"newCards"`
}

// CollectionOverview is a collection together with its stats, as shown on
// the collections listing.
type CollectionOverview struct {
	Collection
	Stats CollectionStats `json:"stats"`
}
