package models

import (
	"time"

	"github.com/google/uuid"
)

// Export represents a generated CSV export artifact
type Export struct {
	ID           uuid.UUID `json:"id"`
	Filename     string    `json:"filename"`
	StoragePath  string    `json:"storage_path"`
	FeatureCount int       `json:"feature_count"`
	CreatedAt    time.Time `json:"created_at"`
}
