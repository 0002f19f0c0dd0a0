package reasoner

import (
	"context"
	"strings"
	"testing"
	"time"

	"geocompliance-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteJudgeWithoutClientIsUnavailable(t *testing.T) {
	r := NewRemoteReasoner(nil)

	_, err := r.Judge(context.Background(), "anything", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestRemoteOptions(t *testing.T) {
	r := NewRemoteReasoner(nil, WithModel("gemini-2.5-pro"), WithTimeout(3*time.Second))

	assert.Equal(t, "gemini-2.5-pro", r.model)
	assert.Equal(t, 3*time.Second, r.timeout)
}

func TestRemoteDefaults(t *testing.T) {
	r := NewRemoteReasoner(nil)

	assert.Equal(t, defaultModel, r.model)
	assert.Equal(t, defaultTimeout, r.timeout)
}

func TestAllowedJurisdictionsDeduplicatesInOrder(t *testing.T) {
	regs := []models.Regulation{
		{ID: "a", Jurisdiction: "Utah"},
		{ID: "b", Jurisdiction: "California"},
		{ID: "c", Jurisdiction: "Utah"},
	}

	assert.Equal(t, []string{"Utah", "California"}, allowedJurisdictions(regs))
}

func TestBuildPromptCarriesFeatureAndRegulations(t *testing.T) {
	regs := []models.Regulation{
		{
			ID:             "ut_act",
			Name:           "Utah Social Media Act",
			Jurisdiction:   "Utah",
			Description:    "Curfew and parental consent rules",
			KeyObligations: []string{"Verify age", "Enforce curfew"},
			Scope:          []string{"Social media platforms"},
		},
	}

	prompt := buildPrompt("curfew mode for minors", regs, []string{"Utah"})

	assert.Contains(t, prompt, "curfew mode for minors")
	assert.Contains(t, prompt, "Name: Utah Social Media Act")
	assert.Contains(t, prompt, "Obligations: Verify age, Enforce curfew")
	assert.Contains(t, prompt, "Only select from the following jurisdictions: Utah")
	assert.Contains(t, prompt, `"requires_compliance": boolean`)
}

func TestBuildPromptCapsRegulationCount(t *testing.T) {
	regs := make([]models.Regulation, 5)
	for i := range regs {
		regs[i] = models.Regulation{
			ID:           string(rune('a' + i)),
			Name:         "Regulation " + string(rune('A'+i)),
			Jurisdiction: "Utah",
		}
	}

	prompt := buildPrompt("text", regs, []string{"Utah"})

	assert.Equal(t, maxPromptRegulations, strings.Count(prompt, "- Name:"))
	assert.NotContains(t, prompt, "Regulation D")
}

func TestResponseTextWithNilResponse(t *testing.T) {
	assert.Equal(t, "", responseText(nil))
}
