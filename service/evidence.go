package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"geocompliance-backend/models"
)

const (
	// evidenceSeparator joins the evidence parts
	evidenceSeparator = " | "

	// evidenceSnippetLength truncates the source text in the audit trail
	evidenceSnippetLength = 200

	// evidenceMaxRegulations bounds the regulations cited in the audit trail
	evidenceMaxRegulations = 3
)

// EvidenceComposer builds the human-auditable evidence string for an
// analysis. Output is stable and reproducible for identical inputs.
type EvidenceComposer struct {
	scorer *RiskScorer
}

// NewEvidenceComposer creates a composer sharing the scorer's keyword table
func NewEvidenceComposer(scorer *RiskScorer) *EvidenceComposer {
	return &EvidenceComposer{scorer: scorer}
}

// Compose concatenates the text snippet, the matched regulations with the
// risk categories present in the text, and the judgement confidence. The
// keyword categories listed per regulation are those found anywhere in the
// text, not categories specific to that regulation.
func (c *EvidenceComposer) Compose(text string, regulations []models.Regulation, judgement models.Judgement) string {
	var parts []string

	snippet := text
	if utf8.RuneCountInString(snippet) > evidenceSnippetLength {
		// Truncate on a rune boundary; a byte slice could split a multi-byte
		// character and emit invalid UTF-8 into the audit trail
		snippet = string([]rune(snippet)[:evidenceSnippetLength]) + "..."
	}
	parts = append(parts, fmt.Sprintf("Feature text: %s", snippet))

	if len(regulations) > 0 {
		categories := c.scorer.CategoriesInText(text)
		limit := len(regulations)
		if limit > evidenceMaxRegulations {
			limit = evidenceMaxRegulations
		}
		matches := make([]string, 0, limit)
		for _, reg := range regulations[:limit] {
			matches = append(matches, fmt.Sprintf("%s (matched keywords: %s)", reg.Name, strings.Join(categories, ", ")))
		}
		parts = append(parts, fmt.Sprintf("Matched regulations: %s", strings.Join(matches, ", ")))
	}

	if judgement.Confidence > 0 {
		parts = append(parts, fmt.Sprintf("Analysis confidence: %d%%", judgement.Confidence))
	}

	return strings.Join(parts, evidenceSeparator)
}
