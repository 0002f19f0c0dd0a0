package reasoner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"geocompliance-backend/models"
)

const (
	// confidenceFlagged is the fixed confidence when the fallback flags a feature
	confidenceFlagged = 75

	// confidenceClear is the fixed confidence when the fallback does not
	confidenceClear = 85
)

// FallbackReasoner is the deterministic, side-effect-free safety net used
// whenever the remote provider is unavailable. It judges on fixed keyword
// categories and the retrieved regulations alone.
type FallbackReasoner struct {
	keywords map[string][]string
}

// NewFallbackReasoner creates a fallback reasoner over the given keyword
// category table. The table is treated as immutable.
func NewFallbackReasoner(keywords map[string][]string) *FallbackReasoner {
	return &FallbackReasoner{keywords: keywords}
}

// Judge produces a keyword-based judgement. It never fails.
func (r *FallbackReasoner) Judge(_ context.Context, annotatedText string, regulations []models.Regulation) (models.Judgement, error) {
	textLower := strings.ToLower(annotatedText)

	var reasoning strings.Builder
	reasoning.WriteString("Analysis based on keyword matching and regulation database. ")

	requiresCompliance := false
	var categories []string
	for category, keywords := range r.keywords {
		for _, keyword := range keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				categories = append(categories, category)
				requiresCompliance = true
				break
			}
		}
	}
	sort.Strings(categories)

	if len(categories) > 0 {
		fmt.Fprintf(&reasoning, "Detected risk categories: %s. ", strings.Join(categories, ", "))
	}

	obligations := []string{}
	likelyRegions := []string{}
	if len(regulations) > 0 {
		requiresCompliance = true

		seen := make(map[string]bool)
		for _, reg := range regulations {
			if !seen[reg.Jurisdiction] {
				seen[reg.Jurisdiction] = true
				likelyRegions = append(likelyRegions, reg.Jurisdiction)
			}
		}
		sort.Strings(likelyRegions)

		limit := len(regulations)
		if limit > 3 {
			limit = 3
		}
		for _, reg := range regulations[:limit] {
			if len(reg.KeyObligations) > 0 {
				obligations = append(obligations, reg.KeyObligations[0])
			} else {
				obligations = append(obligations, "General compliance")
			}
		}

		fmt.Fprintf(&reasoning, "Matched against %d relevant regulations.", len(regulations))
	} else {
		reasoning.WriteString("No specific regulations matched.")
	}

	confidence := confidenceClear
	if requiresCompliance {
		confidence = confidenceFlagged
	}

	return models.Judgement{
		RequiresCompliance: requiresCompliance,
		Reasoning:          reasoning.String(),
		Obligations:        obligations,
		LikelyRegions:      likelyRegions,
		Confidence:         confidence,
	}, nil
}
