package models

import (
	"time"
)

// Regulation represents one entry in the regulation corpus
type Regulation struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Jurisdiction   string    `json:"jurisdiction"`
	Description    string    `json:"description"`
	KeyObligations []string  `json:"key_obligations"`
	Scope          []string  `json:"scope"`
	Penalties      string    `json:"penalties"`
	EffectiveDate  time.Time `json:"effective_date"`

	// SimilarityScore is set on request-time copies returned by retrieval;
	// it is never present on corpus records themselves.
	SimilarityScore float64 `json:"similarity_score,omitempty"`
}

// Judgement is the structured compliance judgement produced per request,
// either by the remote reasoning provider or by the deterministic fallback.
type Judgement struct {
	RequiresCompliance bool     `json:"requires_compliance"`
	Reasoning          string   `json:"reasoning"`
	Obligations        []string `json:"obligations"`
	LikelyRegions      []string `json:"likely_regions"`
	Confidence         int      `json:"confidence"` // 0-100
}
