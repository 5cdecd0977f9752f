package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/google/uuid"
)

type CollectionsR struct {
	db QueryI
}

func NewCollectionsRepository(db QueryI) *CollectionsR {
	return &CollectionsR{db: db}
}

// OwnedCollection fetches a collection only if it belongs to the given
// user; absent and not-owned both come back as ErrNotFound.
func (c *CollectionsR) OwnedCollection(ctx context.Context, userID, collectionID uuid.UUID) (models.Collection, error) {
	query := `
		SELECT id, user_id, name, COALESCE(description, '') AS description, created_at, updated_at
		FROM collections
		WHERE id = $1 AND user_id = $2
	`

	var collection models.Collection
	err := c.db.GetContext(ctx, &collection, query, collectionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Collection{}, ErrNotFound
		}
		return models.Collection{}, fmt.Errorf("failed to get collection %s: %w", collectionID, err)
	}

	return collection, nil
}

// UserCollections returns the user's collections, newest first.
func (c *CollectionsR) UserCollections(ctx context.Context, userID uuid.UUID) ([]models.Collection, error) {
	query := `
		SELECT id, user_id, name, COALESCE(description, '') AS description, created_at, updated_at
		FROM collections
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	collections := make([]models.Collection, 0)
	if err := c.db.SelectContext(ctx, &collections, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list collections for user %s: %w", userID, err)
	}

	return collections, nil
}

func (c *CollectionsR) CreateCollection(ctx context.Context, userID uuid.UUID, name, description string) (models.Collection, error) {
	query := `
		INSERT INTO collections (user_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, COALESCE(description, '') AS description, created_at, updated_at
	`

	var collection models.Collection
	err := c.db.GetContext(ctx, &collection, query, userID, name, description)
	if err != nil {
		return models.Collection{}, fmt.Errorf("failed to create collection: %w", err)
	}

	return collection, nil
}

// DeleteCollection removes a user's collection; its cards go with it via
// the FK cascade. Deleting someone else's collection is a silent no-op at
// the SQL level, reported as ErrNotFound.
func (c *CollectionsR) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	query := `DELETE FROM collections WHERE id = $1 AND user_id = $2`

	res, err := c.db.ExecContext(ctx, query, collectionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collectionID, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}
