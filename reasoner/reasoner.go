package reasoner

import (
	"context"
	"errors"

	"geocompliance-backend/models"
)

// Reasoner produces a structured compliance judgement from annotated feature
// text and the retrieved regulations.
type Reasoner interface {
	Judge(ctx context.Context, annotatedText string, regulations []models.Regulation) (models.Judgement, error)
}

// ErrUnavailable is the distinguished outcome when the remote reasoning
// provider cannot produce a judgement (unreachable, timed out, or returned
// unparsable content). The orchestrator routes to the deterministic fallback
// on this error; it is never surfaced to callers.
var ErrUnavailable = errors.New("reasoning provider unavailable")
