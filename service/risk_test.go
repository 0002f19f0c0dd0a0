package service

import (
	"testing"

	"geocompliance-backend/models"

	"github.com/stretchr/testify/assert"
)

func newTestScorer() *RiskScorer {
	return NewRiskScorer(DefaultRiskWeights(), DefaultRiskKeywords())
}

func TestCategoriesInTextSorted(t *testing.T) {
	scorer := newTestScorer()

	categories := scorer.CategoriesInText("Curfew restrictions for each minor with parental consent and age verification")

	assert.Equal(t, []string{"age_verification", "child_safety", "parental_controls"}, categories)
}

func TestCategoriesInTextEmpty(t *testing.T) {
	scorer := newTestScorer()

	assert.Empty(t, scorer.CategoriesInText("video upload with format conversion"))
}

func TestScoreKeywordComponent(t *testing.T) {
	scorer := newTestScorer()

	// child_safety (40) only
	score := scorer.Score("curfew for accounts", nil, models.Judgement{})
	assert.Equal(t, 40, score)
}

func TestScoreRegulationCountCapped(t *testing.T) {
	scorer := newTestScorer()

	regs := []models.Regulation{
		{Name: "Act One", Jurisdiction: "Utah"},
		{Name: "Act Two", Jurisdiction: "Texas"},
		{Name: "Act Three", Jurisdiction: "Florida"},
	}

	// No keywords, no judgement: 3 regulations x 15 capped at 30
	score := scorer.Score("neutral text", regs, models.Judgement{})
	assert.Equal(t, 30, score)
}

func TestScoreMinorRegulationBonus(t *testing.T) {
	scorer := newTestScorer()

	regs := []models.Regulation{{Name: "Child Online Protection Act", Jurisdiction: "United States"}}

	// 15 retrieval + 20 minor-protection bonus
	score := scorer.Score("neutral text", regs, models.Judgement{})
	assert.Equal(t, 35, score)
}

func TestScoreCaliforniaBonus(t *testing.T) {
	scorer := newTestScorer()

	regs := []models.Regulation{{Name: "Consumer Privacy Act", Jurisdiction: "California, United States"}}

	// 15 retrieval + 10 California bonus
	score := scorer.Score("neutral text", regs, models.Judgement{})
	assert.Equal(t, 25, score)
}

func TestScoreConfidenceComponentOnlyWhenFlagged(t *testing.T) {
	scorer := newTestScorer()

	flagged := models.Judgement{RequiresCompliance: true, Confidence: 80}
	assert.Equal(t, 24, scorer.Score("neutral text", nil, flagged))

	clear := models.Judgement{RequiresCompliance: false, Confidence: 80}
	assert.Equal(t, 0, scorer.Score("neutral text", nil, clear))
}

func TestScoreClampsAt100(t *testing.T) {
	scorer := newTestScorer()

	regs := []models.Regulation{
		{Name: "Child Safety Act", Jurisdiction: "California"},
		{Name: "Minor Protection Act", Jurisdiction: "California"},
	}
	judgement := models.Judgement{RequiresCompliance: true, Confidence: 100}

	text := "Curfew and parental consent with age verification, tracking personal data, recommendation feed, geo-blocking"
	score := scorer.Score(text, regs, judgement)

	assert.Equal(t, 100, score)
}

func TestScoreUnknownCategoryDefaultsToTen(t *testing.T) {
	scorer := NewRiskScorer(
		map[string]int{},
		map[string][]string{"custom": {"trigger"}},
	)

	assert.Equal(t, 10, scorer.Score("a trigger appears", nil, models.Judgement{}))
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := newTestScorer()
	regs := []models.Regulation{{Name: "Utah Social Media Act", Jurisdiction: "Utah"}}
	judgement := models.Judgement{RequiresCompliance: true, Confidence: 75}
	text := "Curfew mode for each minor with parental consent"

	first := scorer.Score(text, regs, judgement)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(text, regs, judgement))
	}
}
