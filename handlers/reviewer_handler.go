package handlers

import (
	"context"
	"errors"
	"net/http"

	"geocompliance-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// ReviewerStore reads reviewer accounts
type ReviewerStore interface {
	GetByEmail(ctx context.Context, email string) (*models.Reviewer, error)
}

// ReviewerHandler handles HTTP requests for reviewer accounts
type ReviewerHandler struct {
	store ReviewerStore
}

// NewReviewerHandler creates a new reviewer handler
func NewReviewerHandler(store ReviewerStore) *ReviewerHandler {
	return &ReviewerHandler{store: store}
}

// GetReviewer handles GET /api/reviewers/:email
func (h *ReviewerHandler) GetReviewer(c *gin.Context) {
	email := c.Param("email")

	reviewer, err := h.store.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Reviewer not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FETCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reviewer,
	})
}
