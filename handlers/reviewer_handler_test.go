package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"geocompliance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryReviewerStore is an in-memory ReviewerStore for handler tests
type memoryReviewerStore struct {
	reviewers map[string]*models.Reviewer
}

func (s *memoryReviewerStore) GetByEmail(_ context.Context, email string) (*models.Reviewer, error) {
	reviewer, ok := s.reviewers[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return reviewer, nil
}

func newReviewerRouter(store ReviewerStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewReviewerHandler(store)

	r := gin.New()
	r.GET("/api/reviewers/:email", handler.GetReviewer)
	return r
}

func TestGetReviewerOmitsPasswordHash(t *testing.T) {
	store := &memoryReviewerStore{reviewers: map[string]*models.Reviewer{
		"reviewer@example.com": {
			ID:           uuid.New(),
			Email:        "reviewer@example.com",
			Name:         "Test Reviewer",
			PasswordHash: "$2a$10$secret",
			CreatedAt:    time.Now(),
		},
	}}
	r := newReviewerRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviewers/reviewer@example.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "reviewer@example.com")
	assert.Contains(t, w.Body.String(), "Test Reviewer")
	assert.NotContains(t, w.Body.String(), "secret")
}

func TestGetReviewerNotFound(t *testing.T) {
	r := newReviewerRouter(&memoryReviewerStore{reviewers: map[string]*models.Reviewer{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviewers/missing@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}
