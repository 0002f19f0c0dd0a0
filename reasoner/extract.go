package reasoner

import (
	"encoding/json"
	"fmt"
	"strings"

	"geocompliance-backend/models"
)

// ParseError is a typed failure for responses the tolerant parser cannot
// turn into a judgement.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse reasoning response: %s", e.Reason)
}

// extractJSONObject returns the first balanced-brace JSON object span in raw
// text. Reasoning providers wrap JSON in prose or markdown fences; this scans
// for the first '{' and tracks brace depth, honoring string literals and
// escapes.
func extractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", &ParseError{Reason: "no JSON object found in response"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", &ParseError{Reason: "unbalanced braces in response"}
}

// judgementPayload is the wire shape the reasoning provider is prompted to emit
type judgementPayload struct {
	RequiresCompliance bool     `json:"requires_compliance"`
	Reasoning          string   `json:"reasoning"`
	Obligations        []string `json:"obligations"`
	LikelyRegions      []string `json:"likely_regions"`
	Confidence         int      `json:"confidence"`
}

// parseJudgement extracts and validates a judgement from raw provider output.
// Likely regions are clamped to the allowed jurisdiction set; confidence is
// clamped to [0,100].
func parseJudgement(raw string, allowedRegions []string) (models.Judgement, error) {
	span, err := extractJSONObject(raw)
	if err != nil {
		return models.Judgement{}, err
	}

	var payload judgementPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return models.Judgement{}, &ParseError{Reason: err.Error()}
	}
	if payload.Reasoning == "" {
		return models.Judgement{}, &ParseError{Reason: "missing reasoning field"}
	}

	allowed := make(map[string]string, len(allowedRegions))
	for _, region := range allowedRegions {
		allowed[strings.ToLower(region)] = region
	}
	regions := make([]string, 0, len(payload.LikelyRegions))
	seen := make(map[string]bool)
	for _, region := range payload.LikelyRegions {
		canonical, ok := allowed[strings.ToLower(strings.TrimSpace(region))]
		if !ok || seen[canonical] {
			continue
		}
		seen[canonical] = true
		regions = append(regions, canonical)
	}

	confidence := payload.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}

	obligations := payload.Obligations
	if obligations == nil {
		obligations = []string{}
	}

	return models.Judgement{
		RequiresCompliance: payload.RequiresCompliance,
		Reasoning:          payload.Reasoning,
		Obligations:        obligations,
		LikelyRegions:      regions,
		Confidence:         confidence,
	}, nil
}
