package service

import (
	"context"
	"testing"
	"time"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/repository"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	mock_service "github.com/arthur12320/flash-cards-simple/internal/service/mock"
	"github.com/arthur12320/flash-cards-simple/internal/storage/cache"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStudyServiceMock(ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *StudyS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return &StudyS{
		cards:       repo,
		collections: repo,
		users:       repo,
		sessions:    cache.NewCache(),
		log:         zap.NewNop(),
		now:         func() time.Time { return fixedNow },
	}
}

func TestStudyS_DueCards(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	newCard := models.Card{ID: uuid.New(), CollectionID: collectionID}
	overdue := models.Card{ID: uuid.New(), CollectionID: collectionID, LastReviewedAt: &past, NextReviewAt: &past}
	scheduled := models.Card{ID: uuid.New(), CollectionID: collectionID, LastReviewedAt: &past, NextReviewAt: &future}

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		wantIDs []uuid.UUID
		wantErr error
	}{
		{
			name: "new card first, future card excluded",
			f: func(m *mock_service.MockRepositoryI) {
				m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
				m.EXPECT().CollectionCards(gomock.Any(), collectionID).
					Return([]models.Card{scheduled, overdue, newCard}, nil)
			},
			wantIDs: []uuid.UUID{newCard.ID, overdue.ID},
		},
		{
			name: "collection not owned",
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

			svc := newStudyServiceMock(ctrl, tt.f)

			cards, err := svc.DueCards(context.Background(), userID, collectionID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			gotIDs := make([]uuid.UUID, 0, len(cards))
			for _, card := range cards {
				gotIDs = append(gotIDs, card.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestStudyS_RecordDifficulty_DuplicateGuard(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	cardA := models.Card{ID: uuid.New(), CollectionID: collectionID, FrontText: "A"}
	cardB := models.Card{ID: uuid.New(), CollectionID: collectionID, FrontText: "B"}

	user := models.User{ID: userID, ReviewIntervals: models.DefaultReviewIntervals()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var persisted []models.Card
	svc := newStudyServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
		m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
		m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return([]models.Card{cardA, cardB}, nil)

		// the review transition must run exactly once for card A
		m.EXPECT().OwnedCard(gomock.Any(), userID, cardA.ID).Return(cardA, nil).Times(1)
		m.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil).Times(1)
		m.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, card models.Card) error {
				persisted = append(persisted, card)
				return nil
			}).Times(1)
	})

	_, err := svc.StartSession(context.Background(), userID, collectionID, true)
	require.NoError(t, err)

	reviewed, err := svc.RecordDifficulty(context.Background(), userID, cardA.ID, models.DifficultyEasy)
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyEasy, *reviewed.LastDifficulty)

	// second rating of the same card in the same sitting is rejected and
	// the easy outcome of the first call stays persisted
	_, err = svc.RecordDifficulty(context.Background(), userID, cardA.ID, models.DifficultyHard)
	require.ErrorIs(t, err, session.ErrDuplicateReview)

	require.Len(t, persisted, 1)
	assert.Equal(t, models.DifficultyEasy, *persisted[0].LastDifficulty)
	assert.Equal(t, fixedNow.Add(48*time.Hour), *persisted[0].NextReviewAt)
}

func TestStudyS_RecordDifficulty_CardOutsideSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	inSession := models.Card{ID: uuid.New(), CollectionID: collectionID, FrontText: "A"}
	outside := models.Card{ID: uuid.New(), CollectionID: collectionID, FrontText: "B"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no OwnedCard/UpdateSchedule expectations: rating a card outside the
	// sitting must fail before anything is fetched or written
	svc := newStudyServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
		m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
		m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return([]models.Card{inSession}, nil)
	})

	_, err := svc.StartSession(context.Background(), userID, collectionID, true)
	require.NoError(t, err)

	_, err = svc.RecordDifficulty(context.Background(), userID, outside.ID, models.DifficultyEasy)
	require.ErrorIs(t, err, session.ErrCardNotInSession)
}

func TestStudyS_RecordDifficulty_NoSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newStudyServiceMock(ctrl, nil)

	_, err := svc.RecordDifficulty(context.Background(), uuid.New(), uuid.New(), models.DifficultyEasy)
	require.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStudyS_StartSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	future := fixedNow.Add(time.Hour)
	newCard := models.Card{ID: uuid.New(), CollectionID: collectionID}
	scheduled := models.Card{ID: uuid.New(), CollectionID: collectionID, LastReviewedAt: &fixedNow, NextReviewAt: &future}

	tests := []struct {
		name      string
		all       bool
		cards     []models.Card
		wantTotal int
		wantErr   error
	}{
		{
			name:      "due cards only",
			all:       false,
			cards:     []models.Card{newCard, scheduled},
			wantTotal: 1,
		},
		{
			name:      "all cards",
			all:       true,
			cards:     []models.Card{newCard, scheduled},
			wantTotal: 2,
		},
		{
			name:    "nothing to study",
			all:     false,
			cards:   []models.Card{scheduled},
			wantErr: session.ErrNoCards,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newStudyServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
				m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
				m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return(tt.cards, nil)
			})

			sess, err := svc.StartSession(context.Background(), userID, collectionID, tt.all)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			_, total := sess.Progress()
			assert.Equal(t, tt.wantTotal, total)

			active, err := svc.ActiveSession(userID)
			require.NoError(t, err)
			assert.Same(t, sess, active)
		})
	}
}

func TestStudyS_CompleteStudySession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	cardA := models.Card{ID: uuid.New(), CollectionID: collectionID}
	user := models.User{ID: userID, ReviewIntervals: models.DefaultReviewIntervals()}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newStudyServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
		m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil).Times(2)
		m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return([]models.Card{cardA}, nil)
		m.EXPECT().OwnedCard(gomock.Any(), userID, cardA.ID).Return(cardA, nil)
		m.EXPECT().UserByID(gomock.Any(), userID).Return(user, nil)
		m.EXPECT().UpdateSchedule(gomock.Any(), gomock.Any()).Return(nil)
	})

	_, err := svc.StartSession(context.Background(), userID, collectionID, true)
	require.NoError(t, err)

	_, err = svc.RecordDifficulty(context.Background(), userID, cardA.ID, models.DifficultyMedium)
	require.NoError(t, err)

	summary, err := svc.CompleteStudySession(context.Background(), userID, collectionID, []uuid.UUID{cardA.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ReviewedCount)
	assert.Equal(t, []uuid.UUID{cardA.ID}, summary.ReviewedCardIDs)

	// the session is released on completion
	_, err = svc.ActiveSession(userID)
	require.ErrorIs(t, err, ErrNoActiveSession)
}

func TestStudyS_RestartSession(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	collectionID := uuid.New()

	cards := []models.Card{
		{ID: uuid.New(), CollectionID: collectionID},
		{ID: uuid.New(), CollectionID: collectionID},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newStudyServiceMock(ctrl, func(m *mock_service.MockRepositoryI) {
		m.EXPECT().OwnedCollection(gomock.Any(), userID, collectionID).Return(models.Collection{ID: collectionID}, nil)
		m.EXPECT().CollectionCards(gomock.Any(), collectionID).Return(cards, nil)
	})

	sess, err := svc.StartSession(context.Background(), userID, collectionID, true)
	require.NoError(t, err)

	moved, err := svc.Advance(userID)
	require.NoError(t, err)
	assert.True(t, moved)

	require.NoError(t, svc.RestartSession(userID))
	assert.Equal(t, cards[0].ID, sess.Current().ID)
}
