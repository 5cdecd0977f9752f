package service

import (
	"context"
	"testing"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/repository"
	mock_service "github.com/arthur12320/flash-cards-simple/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCollectionServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *CollectionS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return &CollectionS{
		collections: repo,
		cards:       repo,
		log:         zap.NewNop(),
		now:         func() time.Time { return fixedNow },
	}
}

func TestCollectionS_CreateCollection(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	tests := []struct {
		name     string
		collName string
		f        func(*mock_service.MockRepositoryI)
		wantErr  error
	}{
		{
			name:     "success trims the name",
			collName: "  French  ",
			f: func(m *mock_service.MockRepositoryI) {
				m.EXPECT().CreateCollection(gomock.Any(), userID, "French", "verbs").
					Return(models.Collection{Name: "French"}, nil)
			},
		},
		{
			name:     "blank name",
			collName: "   ",
			wantErr:  ErrCollectionNameRequired,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newCollectionServiceMock(ctrl, tt.f)

			_, err := svc.CreateCollection(context.Background(), userID, tt.collName, "verbs")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestCollectionS_CollectionStats(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		want    models.CollectionStats
		wantErr error
	}{
		{
			name: "three new cards",
			f: func(m *mock_service.MockRepositoryI) {
				m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
				m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return([]models.Card{
					{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()},
				}, nil)
			},
			want: models.CollectionStats{TotalCards: 3, ReviewedCards: 0, DueCards: 3, NewCards: 3},
		},
		{
			name: "mixed collection",
			f: func(m *mock_service.MockRepositoryI) {
				m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
				m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return([]models.Card{
					{ID: uuid.New()},
					{ID: uuid.New(), LastReviewedAt: &past, NextReviewAt: &future},
					{ID: uuid.New(), LastReviewedAt: &past, NextReviewAt: &past},
				}, nil)
			},
			want: models.CollectionStats{TotalCards: 3, ReviewedCards: 2, DueCards: 2, NewCards: 1},
		},
		{
			name: "not owned",
			f: func(m *mock_service.MockRepositoryI) {
				m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{}, repository.ErrNotFound)
			},
			wantErr: repository.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newCollectionServiceMock(ctrl, tt.f)

			stats, err := svc.CollectionStats(context.Background(), userID, collectionID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, stats)
			assert.Equal(t, stats.TotalCards, stats.ReviewedCards+stats.NewCards)
		})
	}
}

func TestCollectionS_Collections(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	first := models.Collection{ID: uuid.New(), UserID: userID, Name: "first"}
	second := models.Collection{ID: uuid.New(), UserID: userID, Name: "second"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newCollectionServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
		m.EXPECT().UserCollections(gomock.Any(), userID).Return([]models.Collection{first, second}, nil)
		m.EXPECT().CollectionCards(gomock.Any(), first.ID).Return([]models.Card{{ID: uuid.New()}}, nil)
		m.EXPECT().CollectionCards(gomock.Any(), second.ID).Return([]models.Card{}, nil)
	})

	overviews, err := svc.Collections(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, overviews, 2)
	assert.Equal(t, 1, overviews[0].Stats.TotalCards)
	assert.Zero(t, overviews[1].Stats.TotalCards)
}
