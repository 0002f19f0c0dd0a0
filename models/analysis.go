package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// StringList is a JSON-encoded list of strings stored in a JSONB column
type StringList []string

// Value implements driver.Valuer for JSONB
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for JSONB
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*l = StringList{}
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StringMap is a JSON-encoded string map stored in a JSONB column
type StringMap map[string]string

// Value implements driver.Valuer for JSONB
func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		m = StringMap{}
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(StringMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*m = make(StringMap)
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// AnalysisResult is the outcome of one compliance analysis. This shape is the
// canonical JSON contract shared by the HTTP API, the batch driver, and the
// CSV export.
type AnalysisResult struct {
	RequiresGeoCompliance bool              `json:"requires_geo_compliance"`
	Reasoning             string            `json:"reasoning"`
	RelatedRegulations    []string          `json:"related_regulations"`
	RiskScore             int               `json:"risk_score"` // 0-100
	RegionsAffected       []string          `json:"regions_affected"`
	Evidence              string            `json:"evidence"`
	JargonResolved        map[string]string `json:"jargon_resolved"`
}

// Analysis is a persisted audit record of one analysis. Rows are append-only:
// the repository exposes no update or delete.
type Analysis struct {
	ID                    uuid.UUID  `json:"feature_id"`
	FeatureTitle          string     `json:"feature_title"`
	RequiresGeoCompliance bool       `json:"requires_geo_compliance"`
	Reasoning             string     `json:"reasoning"`
	RelatedRegulations    StringList `json:"related_regulations"`
	RiskScore             int        `json:"risk_score"`
	RegionsAffected       StringList `json:"regions_affected"`
	Evidence              string     `json:"evidence"`
	JargonResolved        StringMap  `json:"jargon_resolved"`
	CreatedAt             time.Time  `json:"created_at"`
}

// NewAnalysis builds a persisted audit record from an analysis result
func NewAnalysis(id uuid.UUID, title string, result *AnalysisResult) *Analysis {
	return &Analysis{
		ID:                    id,
		FeatureTitle:          title,
		RequiresGeoCompliance: result.RequiresGeoCompliance,
		Reasoning:             result.Reasoning,
		RelatedRegulations:    StringList(result.RelatedRegulations),
		RiskScore:             result.RiskScore,
		RegionsAffected:       StringList(result.RegionsAffected),
		Evidence:              result.Evidence,
		JargonResolved:        StringMap(result.JargonResolved),
	}
}
