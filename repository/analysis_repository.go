package repository

import (
	"context"

	"geocompliance-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AnalysisRepository persists the compliance audit trail. The trail is
// append-only: this repository exposes inserts and reads, never updates or
// deletes.
type AnalysisRepository struct {
	db *pgxpool.Pool
}

// NewAnalysisRepository creates a new analysis repository
func NewAnalysisRepository(db *pgxpool.Pool) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Create appends an analysis record to the audit trail
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.Analysis) error {
	query := `
		INSERT INTO compliance_analyses (
			id, feature_title, requires_geo_compliance, reasoning,
			related_regulations, risk_score, regions_affected, evidence,
			jargon_resolved
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		analysis.ID,
		analysis.FeatureTitle,
		analysis.RequiresGeoCompliance,
		analysis.Reasoning,
		analysis.RelatedRegulations,
		analysis.RiskScore,
		analysis.RegionsAffected,
		analysis.Evidence,
		analysis.JargonResolved,
	).Scan(&analysis.CreatedAt)
}

// GetByID retrieves an audit record by ID
func (r *AnalysisRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error) {
	analysis := &models.Analysis{}
	query := `
		SELECT id, feature_title, requires_geo_compliance, reasoning,
			related_regulations, risk_score, regions_affected, evidence,
			jargon_resolved, created_at
		FROM compliance_analyses
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&analysis.ID,
		&analysis.FeatureTitle,
		&analysis.RequiresGeoCompliance,
		&analysis.Reasoning,
		&analysis.RelatedRegulations,
		&analysis.RiskScore,
		&analysis.RegionsAffected,
		&analysis.Evidence,
		&analysis.JargonResolved,
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return analysis, nil
}

// ListAll retrieves all audit records, most recent first
func (r *AnalysisRepository) ListAll(ctx context.Context) ([]models.Analysis, error) {
	query := `
		SELECT id, feature_title, requires_geo_compliance, reasoning,
			related_regulations, risk_score, regions_affected, evidence,
			jargon_resolved, created_at
		FROM compliance_analyses
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

// ListRecent retrieves the most recent audit records up to limit
func (r *AnalysisRepository) ListRecent(ctx context.Context, limit int) ([]models.Analysis, error) {
	query := `
		SELECT id, feature_title, requires_geo_compliance, reasoning,
			related_regulations, risk_score, regions_affected, evidence,
			jargon_resolved, created_at
		FROM compliance_analyses
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAnalyses(rows)
}

func scanAnalyses(rows pgx.Rows) ([]models.Analysis, error) {
	analyses := make([]models.Analysis, 0)
	for rows.Next() {
		var analysis models.Analysis
		err := rows.Scan(
			&analysis.ID,
			&analysis.FeatureTitle,
			&analysis.RequiresGeoCompliance,
			&analysis.Reasoning,
			&analysis.RelatedRegulations,
			&analysis.RiskScore,
			&analysis.RegionsAffected,
			&analysis.Evidence,
			&analysis.JargonResolved,
			&analysis.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}
