package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arthur12320/flash-cards-simple/internal/models"
	"github.com/arthur12320/flash-cards-simple/internal/repository"
	"github.com/arthur12320/flash-cards-simple/internal/scheduler"
	"github.com/arthur12320/flash-cards-simple/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeService stubs only the methods a test exercises; calling anything
// else panics through the embedded nil interface.
type fakeService struct {
	ServiceI

	reviewCard func(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error)
	record     func(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error)
	complete   func(ctx context.Context, userID, collectionID uuid.UUID, ids []uuid.UUID) (session.Summary, error)
	intervals  func(ctx context.Context, userID uuid.UUID, in scheduler.IntervalInput) (models.ReviewIntervals, error)
	stats      func(ctx context.Context, userID, collectionID uuid.UUID) (models.CollectionStats, error)
}

func (f *fakeService) ReviewCard(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error) {
	return f.reviewCard(ctx, userID, cardID, difficulty)
}

func (f *fakeService) RecordDifficulty(ctx context.Context, userID, cardID uuid.UUID, difficulty models.Difficulty) (models.Card, error) {
	return f.record(ctx, userID, cardID, difficulty)
}

func (f *fakeService) CompleteStudySession(ctx context.Context, userID, collectionID uuid.UUID, ids []uuid.UUID) (session.Summary, error) {
	return f.complete(ctx, userID, collectionID, ids)
}

func (f *fakeService) UpdateReviewIntervals(ctx context.Context, userID uuid.UUID, in scheduler.IntervalInput) (models.ReviewIntervals, error) {
	return f.intervals(ctx, userID, in)
}

func (f *fakeService) CollectionStats(ctx context.Context, userID, collectionID uuid.UUID) (models.CollectionStats, error) {
	return f.stats(ctx, userID, collectionID)
}

func testRouter(svc ServiceI) (*gin.Engine, uuid.UUID) {
	gin.SetMode(gin.TestMode)

	userID := uuid.New()
	h := NewHandlers(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(userIDKey, userID)
		c.Next()
	})
	r.POST("/cards/:id/review", h.ReviewCard)
	r.POST("/study/review", h.RecordDifficulty)
	r.POST("/collections/:id/study/complete", h.CompleteSession)
	r.PUT("/me/intervals", h.UpdateReviewIntervals)
	r.GET("/collections/:id/stats", h.CollectionStats)

	return r, userID
}

func TestHandlers_ReviewCard(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()

	tests := []struct {
		name       string
		path       string
		body       string
		svc        *fakeService
		wantStatus int
	}{
		{
			name: "success",
			path: "/cards/" + cardID.String() + "/review",
			body: `{"difficulty":"easy"}`,
			svc: &fakeService{
				reviewCard: func(_ context.Context, _, gotCardID uuid.UUID, difficulty models.Difficulty) (models.Card, error) {
					return models.Card{ID: gotCardID, ReviewCount: 1}, nil
				},
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad difficulty",
			path:       "/cards/" + cardID.String() + "/review",
			body:       `{"difficulty":"impossible"}`,
			svc:        &fakeService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad card id",
			path:       "/cards/nope/review",
			body:       `{"difficulty":"easy"}`,
			svc:        &fakeService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "card not owned",
			path: "/cards/" + cardID.String() + "/review",
			body: `{"difficulty":"easy"}`,
			svc: &fakeService{
				reviewCard: func(context.Context, uuid.UUID, uuid.UUID, models.Difficulty) (models.Card, error) {
					return models.Card{}, repository.ErrNotFound
				},
			},
			wantStatus: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, _ := testRouter(tt.svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandlers_RecordDifficulty_Duplicate(t *testing.T) {
	t.Parallel()

	svc := &fakeService{
		record: func(context.Context, uuid.UUID, uuid.UUID, models.Difficulty) (models.Card, error) {
			return models.Card{}, session.ErrDuplicateReview
		},
	}
	r, _ := testRouter(svc)

	body := `{"cardId":"` + uuid.NewString() + `","difficulty":"hard"}`
	req := httptest.NewRequest(http.MethodPost, "/study/review", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandlers_CompleteSession(t *testing.T) {
	t.Parallel()

	collectionID := uuid.New()
	reviewed := []uuid.UUID{uuid.New(), uuid.New()}

	svc := &fakeService{
		complete: func(_ context.Context, _, gotCollectionID uuid.UUID, ids []uuid.UUID) (session.Summary, error) {
			assert.Equal(t, collectionID, gotCollectionID)
			return session.Summary{ReviewedCount: len(ids), ReviewedCardIDs: ids}, nil
		},
	}
	r, _ := testRouter(svc)

	payload, err := json.Marshal(map[string]any{"reviewedCardIds": reviewed})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/collections/"+collectionID.String()+"/study/complete", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var summary session.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.ReviewedCount)
}

func TestHandlers_UpdateReviewIntervals_Invalid(t *testing.T) {
	t.Parallel()

	svc := &fakeService{
		intervals: func(_ context.Context, _ uuid.UUID, in scheduler.IntervalInput) (models.ReviewIntervals, error) {
			_, err := scheduler.ValidateIntervals(in)
			return models.ReviewIntervals{}, err
		},
	}
	r, _ := testRouter(svc)

	// easy shorter than medium must come back as 422 with the field name
	body := `{"hardMinutes":5,"mediumDays":2,"easyDays":1}`
	req := httptest.NewRequest(http.MethodPut, "/me/intervals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "easy")
}

func TestHandlers_CollectionStats(t *testing.T) {
	t.Parallel()

	collectionID := uuid.New()

	svc := &fakeService{
		stats: func(context.Context, uuid.UUID, uuid.UUID) (models.CollectionStats, error) {
			return models.CollectionStats{TotalCards: 3, DueCards: 3, NewCards: 3}, nil
		},
	}
	r, _ := testRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/collections/"+collectionID.String()+"/stats", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats models.CollectionStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.TotalCards)
	assert.Equal(t, 3, stats.DueCards)
}
