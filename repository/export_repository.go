package repository

import (
	"context"

	"geocompliance-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ExportRepository tracks generated CSV export artifacts
type ExportRepository struct {
	db *pgxpool.Pool
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *pgxpool.Pool) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create records a generated export
func (r *ExportRepository) Create(ctx context.Context, export *models.Export) error {
	query := `
		INSERT INTO exports (id, filename, storage_path, feature_count)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRow(
		ctx, query,
		export.ID,
		export.Filename,
		export.StoragePath,
		export.FeatureCount,
	).Scan(&export.CreatedAt)
}

// GetByFilename looks up an export record by its download filename
func (r *ExportRepository) GetByFilename(ctx context.Context, filename string) (*models.Export, error) {
	export := &models.Export{}
	query := `
		SELECT id, filename, storage_path, feature_count, created_at
		FROM exports
		WHERE filename = $1`

	err := r.db.QueryRow(ctx, query, filename).Scan(
		&export.ID,
		&export.Filename,
		&export.StoragePath,
		&export.FeatureCount,
		&export.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return export, nil
}

// List retrieves export records, most recent first
func (r *ExportRepository) List(ctx context.Context, limit int) ([]models.Export, error) {
	query := `
		SELECT id, filename, storage_path, feature_count, created_at
		FROM exports
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exports := make([]models.Export, 0)
	for rows.Next() {
		var export models.Export
		err := rows.Scan(
			&export.ID,
			&export.Filename,
			&export.StoragePath,
			&export.FeatureCount,
			&export.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		exports = append(exports, export)
	}

	return exports, rows.Err()
}
