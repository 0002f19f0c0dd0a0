package service

import (
	"sort"
	"strings"

	"geocompliance-backend/models"
)

// DefaultRiskWeights returns the per-category risk weights. Built once at
// startup and passed into components; never mutated.
func DefaultRiskWeights() map[string]int {
	return map[string]int{
		"child_safety":             40,
		"age_verification":         35,
		"data_privacy":             30,
		"parental_controls":        30,
		"content_moderation":       25,
		"user_verification":        20,
		"content_blocking":         20,
		"algorithmic_transparency": 15,
		"data_localization":        10,
	}
}

// DefaultRiskKeywords returns the keyword lists for the nine risk categories.
// The same table drives the risk scorer, the evidence composer, and the
// deterministic fallback reasoner.
func DefaultRiskKeywords() map[string][]string {
	return map[string][]string{
		"child_safety":             {"minor", "child", "youth", "teen", "age verification", "parental", "guardian", "curfew"},
		"data_privacy":             {"personal data", "user data", "tracking", "profiling", "analytics", "targeting"},
		"content_moderation":       {"harmful content", "violence", "hate", "misinformation", "content removal"},
		"algorithmic_transparency": {"recommendation", "algorithm", "personalization", "feed", "ranking"},
		"data_localization":        {"data storage", "server location", "cross-border", "data transfer"},
		"user_verification":        {"identity verification", "kyc", "account verification", "verified account"},
		"age_verification":         {"age verification", "age gate", "age check", "date of birth"},
		"content_blocking":         {"geo-blocking", "region lock", "content blocking", "content filtering"},
		"parental_controls":        {"parental consent", "parental control", "family pairing", "guardian approval"},
	}
}

const (
	// regulationCountWeight scores each retrieved regulation
	regulationCountWeight = 15

	// regulationCountCap bounds the retrieval-count contribution
	regulationCountCap = 30

	// minorRegulationBonus applies per regulation protecting minors
	minorRegulationBonus = 20

	// californiaBonus applies per California regulation; CCPA/CPRA tend to be stricter
	californiaBonus = 10

	// confidenceFactor scales judgement confidence into the score
	confidenceFactor = 0.3
)

// RiskScorer computes a deterministic risk score from text keywords,
// retrieved regulations, and the judgement confidence.
type RiskScorer struct {
	weights  map[string]int
	keywords map[string][]string
}

// NewRiskScorer creates a scorer over the given weight and keyword tables
func NewRiskScorer(weights map[string]int, keywords map[string][]string) *RiskScorer {
	return &RiskScorer{weights: weights, keywords: keywords}
}

// CategoriesInText returns the sorted risk categories whose keywords appear
// anywhere in the text.
func (s *RiskScorer) CategoriesInText(text string) []string {
	textLower := strings.ToLower(text)
	var categories []string
	for category, keywords := range s.keywords {
		for _, keyword := range keywords {
			if strings.Contains(textLower, strings.ToLower(keyword)) {
				categories = append(categories, category)
				break
			}
		}
	}
	sort.Strings(categories)
	return categories
}

// Score computes the risk score, clamped to [0,100]. Identical inputs always
// yield identical output.
func (s *RiskScorer) Score(text string, regulations []models.Regulation, judgement models.Judgement) int {
	score := 0

	for _, category := range s.CategoriesInText(text) {
		if weight, ok := s.weights[category]; ok {
			score += weight
		} else {
			score += 10
		}
	}

	if len(regulations) > 0 {
		countScore := len(regulations) * regulationCountWeight
		if countScore > regulationCountCap {
			countScore = regulationCountCap
		}
		score += countScore

		for _, reg := range regulations {
			nameLower := strings.ToLower(reg.Name)
			if strings.Contains(nameLower, "child") || strings.Contains(nameLower, "minor") || strings.Contains(nameLower, "youth") {
				score += minorRegulationBonus
			}
			if strings.Contains(strings.ToLower(reg.Jurisdiction), "california") {
				score += californiaBonus
			}
		}
	}

	if judgement.RequiresCompliance {
		score += int(confidenceFactor * float64(judgement.Confidence))
	}

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
