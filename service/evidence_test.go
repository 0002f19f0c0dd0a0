package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"geocompliance-backend/models"

	"github.com/stretchr/testify/assert"
)

func newTestComposer() *EvidenceComposer {
	return NewEvidenceComposer(newTestScorer())
}

func TestComposeWithRegulationsAndConfidence(t *testing.T) {
	composer := newTestComposer()
	regs := []models.Regulation{
		{Name: "Utah Social Media Act", Jurisdiction: "Utah"},
		{Name: "COPPA", Jurisdiction: "United States"},
	}
	judgement := models.Judgement{Confidence: 75}

	evidence := composer.Compose("Curfew mode for each minor", regs, judgement)
	parts := strings.Split(evidence, " | ")

	assert.Len(t, parts, 3)
	assert.Equal(t, "Feature text: Curfew mode for each minor", parts[0])
	assert.Equal(t, "Matched regulations: Utah Social Media Act (matched keywords: child_safety), COPPA (matched keywords: child_safety)", parts[1])
	assert.Equal(t, "Analysis confidence: 75%", parts[2])
}

func TestComposeTruncatesLongText(t *testing.T) {
	composer := newTestComposer()
	text := strings.Repeat("x", 500)

	evidence := composer.Compose(text, nil, models.Judgement{})

	assert.Equal(t, "Feature text: "+strings.Repeat("x", 200)+"...", evidence)
}

func TestComposeTruncatesMultiByteTextOnRuneBoundary(t *testing.T) {
	composer := newTestComposer()
	text := strings.Repeat("x", 199) + "é trailing text"

	evidence := composer.Compose(text, nil, models.Judgement{})

	assert.True(t, utf8.ValidString(evidence))
	assert.Equal(t, "Feature text: "+strings.Repeat("x", 199)+"é...", evidence)
}

func TestComposeKeepsShortMultiByteTextIntact(t *testing.T) {
	composer := newTestComposer()
	text := strings.Repeat("é", 200)

	evidence := composer.Compose(text, nil, models.Judgement{})

	assert.Equal(t, "Feature text: "+text, evidence)
}

func TestComposeOmitsRegulationsWhenNoneMatched(t *testing.T) {
	composer := newTestComposer()

	evidence := composer.Compose("plain text", nil, models.Judgement{Confidence: 85})

	assert.NotContains(t, evidence, "Matched regulations")
	assert.Contains(t, evidence, "Analysis confidence: 85%")
}

func TestComposeOmitsConfidenceWhenZero(t *testing.T) {
	composer := newTestComposer()

	evidence := composer.Compose("plain text", nil, models.Judgement{})

	assert.Equal(t, "Feature text: plain text", evidence)
}

func TestComposeCapsCitedRegulations(t *testing.T) {
	composer := newTestComposer()
	regs := make([]models.Regulation, 5)
	for i := range regs {
		regs[i] = models.Regulation{Name: "Act", Jurisdiction: "Utah"}
	}

	evidence := composer.Compose("text", regs, models.Judgement{})

	assert.Equal(t, evidenceMaxRegulations, strings.Count(evidence, "Act (matched keywords:"))
}

func TestComposeIsStable(t *testing.T) {
	composer := newTestComposer()
	regs := []models.Regulation{{Name: "Utah Social Media Act", Jurisdiction: "Utah"}}
	judgement := models.Judgement{Confidence: 75}
	text := "Curfew mode with parental consent for each minor"

	first := composer.Compose(text, regs, judgement)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, composer.Compose(text, regs, judgement))
	}
}
