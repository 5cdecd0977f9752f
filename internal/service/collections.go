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

var ErrCollectionNameRequired = errors.New("collection name is required")

type CollectionS struct {
	collections CollectionRI
	cards       CardRI
	log         *zap.Logger
	now         func() time.Time
}

func NewCollectionService(collections CollectionRI, cards CardRI, log *zap.Logger, now func() time.Time) *CollectionS {
	return &CollectionS{
		collections: collections,
		cards:       cards,
		log:         log,
		now:         now,
	}
}

func (c *CollectionS) CreateCollection(ctx context.Context, userID uuid.UUID, name, description string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Collection{}, ErrCollectionNameRequired
	}

	return c.collections.CreateCollection(ctx, userID, name, description)
}

// Collections lists the user's collections together with their current
// stats, as shown on the collections page.
func (c *CollectionS) Collections(ctx context.Context, userID uuid.UUID) ([]models.CollectionOverview, error) {
	collections, err := c.collections.UserCollections(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := c.now()
	overviews := make([]models.CollectionOverview, 0, len(collections))
	for _, collection := range collections {
		cards, err := c.cards.CollectionCards(ctx, collection.ID)
		if err != nil {
			return nil, err
		}
		overviews = append(overviews, models.CollectionOverview{
			Collection: collection,
			Stats:      scheduler.AggregateStats(cards, now),
		})
	}

	return overviews, nil
}

// CollectionCards returns a collection's cards after verifying ownership.
func (c *CollectionS) CollectionCards(ctx context.Context, userID, collectionID uuid.UUID) ([]models.Card, error) {
	if _, err := c.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return nil, err
	}

	return c.cards.CollectionCards(ctx, collectionID)
}

// CollectionStats is a point-in-time snapshot of a collection's counts.
func (c *CollectionS) CollectionStats(ctx context.Context, userID, collectionID uuid.UUID) (models.CollectionStats, error) {
	if _, err := c.collections.OwnedCollection(ctx, userID, collectionID); err != nil {
		return models.CollectionStats{}, err
	}

	cards, err := c.cards.CollectionCards(ctx, collectionID)
	if err != nil {
		return models.CollectionStats{}, err
	}

	return scheduler.AggregateStats(cards, c.now()), nil
}

func (c *CollectionS) DeleteCollection(ctx context.Context, userID, collectionID uuid.UUID) error {
	if err := c.collections.DeleteCollection(ctx, userID, collectionID); err != nil {
		return err
	}

	c.log.Info("collection deleted",
		zap.String("collection_id", collectionID.String()),
		zap.String("user_id", userID.String()))

	return nil
}
