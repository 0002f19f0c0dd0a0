package reasoner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"

	"geocompliance-backend/models"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 20 * time.Second

	// maxPromptRegulations bounds how many retrieved regulations the prompt carries
	maxPromptRegulations = 3
)

// RemoteReasoner produces judgements via the Gemini reasoning provider. Every
// failure mode (client error, timeout, unparsable output) maps to
// ErrUnavailable so the orchestrator can route to the deterministic fallback.
type RemoteReasoner struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// RemoteOption is a functional option for RemoteReasoner
type RemoteOption func(*RemoteReasoner)

// WithModel overrides the provider model name
func WithModel(model string) RemoteOption {
	return func(r *RemoteReasoner) {
		r.model = model
	}
}

// WithTimeout bounds each provider call
func WithTimeout(timeout time.Duration) RemoteOption {
	return func(r *RemoteReasoner) {
		r.timeout = timeout
	}
}

// NewRemoteReasoner creates a reasoner backed by the given Gemini client
func NewRemoteReasoner(client *genai.Client, opts ...RemoteOption) *RemoteReasoner {
	r := &RemoteReasoner{
		client:  client,
		model:   defaultModel,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Judge sends the annotated text and retrieved regulations to the provider
// and parses the structured judgement out of its free-form output.
func (r *RemoteReasoner) Judge(ctx context.Context, annotatedText string, regulations []models.Regulation) (models.Judgement, error) {
	if r.client == nil {
		return models.Judgement{}, fmt.Errorf("%w: no provider client configured", ErrUnavailable)
	}

	allowedRegions := allowedJurisdictions(regulations)
	prompt := buildPrompt(annotatedText, regulations, allowedRegions)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(0.2)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return models.Judgement{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	raw := responseText(resp)
	if raw == "" {
		return models.Judgement{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	judgement, err := parseJudgement(raw, allowedRegions)
	if err != nil {
		return models.Judgement{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return judgement, nil
}

// allowedJurisdictions returns the deduplicated jurisdictions of the
// retrieved regulations, in retrieval order.
func allowedJurisdictions(regulations []models.Regulation) []string {
	seen := make(map[string]bool)
	var jurisdictions []string
	for _, reg := range regulations {
		if !seen[reg.Jurisdiction] {
			seen[reg.Jurisdiction] = true
			jurisdictions = append(jurisdictions, reg.Jurisdiction)
		}
	}
	return jurisdictions
}

// buildPrompt assembles the structured compliance prompt
func buildPrompt(text string, regulations []models.Regulation, allowedRegions []string) string {
	var regContext strings.Builder
	limit := len(regulations)
	if limit > maxPromptRegulations {
		limit = maxPromptRegulations
	}
	for _, reg := range regulations[:limit] {
		fmt.Fprintf(&regContext, "- Name: %s\n", reg.Name)
		fmt.Fprintf(&regContext, "  Jurisdiction: %s\n", reg.Jurisdiction)
		fmt.Fprintf(&regContext, "  Description: %s\n", reg.Description)
		fmt.Fprintf(&regContext, "  Obligations: %s\n", strings.Join(reg.KeyObligations, ", "))
		fmt.Fprintf(&regContext, "  Scope: %s\n", strings.Join(reg.Scope, ", "))
	}

	return fmt.Sprintf(`You are a legal compliance expert analyzing whether a software feature requires geo-specific regulatory compliance.

FEATURE DESCRIPTION:
%s

RELEVANT REGULATIONS:
%s
Analyze this feature and determine:
1. Does it require geo-specific compliance logic? (Yes/No)
2. Why? (2-3 sentences)
3. Which specific regulatory obligations might apply?
4. What regions are most likely affected? Only select from the following jurisdictions: %s

Respond in JSON format:
{
    "requires_compliance": boolean,
    "reasoning": "string",
    "obligations": ["string"],
    "likely_regions": ["string"],
    "confidence": 0-100
}`,
		text,
		regContext.String(),
		strings.Join(allowedRegions, ", "),
	)
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}
