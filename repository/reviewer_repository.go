package repository

import (
	"context"

	"geocompliance-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewerRepository manages reviewer accounts
type ReviewerRepository struct {
	db *pgxpool.Pool
}

// NewReviewerRepository creates a new reviewer repository
func NewReviewerRepository(db *pgxpool.Pool) *ReviewerRepository {
	return &ReviewerRepository{db: db}
}

// Create inserts a reviewer account
func (r *ReviewerRepository) Create(ctx context.Context, reviewer *models.Reviewer) error {
	query := `
		INSERT INTO reviewers (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		reviewer.ID,
		reviewer.Email,
		reviewer.Name,
		reviewer.PasswordHash,
	).Scan(&reviewer.CreatedAt)
}

// GetByEmail retrieves a reviewer account by email
func (r *ReviewerRepository) GetByEmail(ctx context.Context, email string) (*models.Reviewer, error) {
	reviewer := &models.Reviewer{}
	query := `
		SELECT id, email, name, password_hash, created_at
		FROM reviewers
		WHERE email = $1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&reviewer.ID,
		&reviewer.Email,
		&reviewer.Name,
		&reviewer.PasswordHash,
		&reviewer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return reviewer, nil
}
