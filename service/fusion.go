package service

import (
	"geocompliance-backend/models"
)

// riskScoreThreshold is the score at or above which the risk signal fires
const riskScoreThreshold = 30

// FuseDecision combines three independent signals into the final
// geo-compliance flag: the judgement, the risk score, and regulation
// retrieval. The flag is set iff at least 2 of the 3 signals are true.
func FuseDecision(judgement models.Judgement, riskScore int, regulations []models.Regulation) bool {
	signals := 0

	if judgement.RequiresCompliance {
		signals++
	}
	if riskScore >= riskScoreThreshold {
		signals++
	}
	if len(regulations) > 0 {
		signals++
	}

	return signals >= 2
}
