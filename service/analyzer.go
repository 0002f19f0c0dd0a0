package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"geocompliance-backend/corpus"
	"geocompliance-backend/jargon"
	"geocompliance-backend/models"
	"geocompliance-backend/reasoner"
)

// Retriever returns regulations ranked by relevance to a query text
type Retriever interface {
	Retrieve(query string, threshold float64, maxResults int) []models.Regulation
}

// defaultBatchConcurrency bounds concurrent analyses in a batch so the remote
// reasoning provider is not overwhelmed
const defaultBatchConcurrency = 4

var errAnalyzerNotConfigured = errors.New("analyzer missing required components")

// Analyzer orchestrates the analysis pipeline: jargon resolution, regulation
// retrieval, judgement acquisition, risk scoring, decision fusion, and
// evidence composition. Analyze never fails: any unexpected error is
// converted to a fail-open default result.
type Analyzer struct {
	resolver  *jargon.Resolver
	retriever Retriever
	remote    reasoner.Reasoner
	fallback  reasoner.Reasoner
	scorer    *RiskScorer
	composer  *EvidenceComposer
}

// AnalyzerOption is a functional option for Analyzer
type AnalyzerOption func(*Analyzer)

// WithJargonResolver sets the jargon resolver
func WithJargonResolver(resolver *jargon.Resolver) AnalyzerOption {
	return func(a *Analyzer) {
		a.resolver = resolver
	}
}

// WithRetriever sets the regulation retriever
func WithRetriever(retriever Retriever) AnalyzerOption {
	return func(a *Analyzer) {
		a.retriever = retriever
	}
}

// WithRemoteReasoner sets the optional remote reasoner. When nil or
// unavailable, the fallback reasoner judges instead.
func WithRemoteReasoner(r reasoner.Reasoner) AnalyzerOption {
	return func(a *Analyzer) {
		a.remote = r
	}
}

// WithFallbackReasoner sets the deterministic fallback reasoner
func WithFallbackReasoner(r reasoner.Reasoner) AnalyzerOption {
	return func(a *Analyzer) {
		a.fallback = r
	}
}

// WithRiskScorer sets the risk scorer
func WithRiskScorer(scorer *RiskScorer) AnalyzerOption {
	return func(a *Analyzer) {
		a.scorer = scorer
	}
}

// WithEvidenceComposer sets the evidence composer
func WithEvidenceComposer(composer *EvidenceComposer) AnalyzerOption {
	return func(a *Analyzer) {
		a.composer = composer
	}
}

// NewAnalyzer creates an analyzer from functional options
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// failOpenResult is the safe default returned on any pipeline failure. A
// broken pipeline reports "no compliance required" rather than blocking;
// this is a deliberate triage trade-off.
func failOpenResult(cause string) *models.AnalysisResult {
	return &models.AnalysisResult{
		RequiresGeoCompliance: false,
		Reasoning:             fmt.Sprintf("Analysis failed: %s. Defaulting to no compliance required.", cause),
		RelatedRegulations:    []string{},
		RiskScore:             0,
		RegionsAffected:       []string{},
		Evidence:              "Error in analysis pipeline",
		JargonResolved:        map[string]string{},
	}
}

// Analyze runs the full pipeline over the concatenated feature text and
// returns the analysis result. It never returns an error or panics: failures
// fall open to the default result.
func (a *Analyzer) Analyze(ctx context.Context, title, description, prd, trd string) (result *models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: analysis pipeline panicked: %v", r)
			result = failOpenResult(fmt.Sprintf("%v", r))
		}
	}()

	if a.resolver == nil || a.retriever == nil || a.fallback == nil || a.scorer == nil || a.composer == nil {
		return failOpenResult(errAnalyzerNotConfigured.Error())
	}

	fullText := strings.TrimSpace(strings.Join([]string{title, description, prd, trd}, " "))

	// 1. Resolve jargon and annotate the text handed downstream
	jargonResolved := a.resolver.Resolve(fullText)
	annotated := a.resolver.Annotate(fullText, jargonResolved)

	// 2. Retrieve relevant regulations
	regulations := a.retriever.Retrieve(annotated, corpus.DefaultThreshold, corpus.DefaultMaxResults)

	// 3. Acquire a judgement: remote when configured, deterministic fallback
	// on the explicit unavailable outcome
	judgement, err := a.judge(ctx, annotated, regulations)
	if err != nil {
		return failOpenResult(err.Error())
	}

	// 4. Risk score
	riskScore := a.scorer.Score(annotated, regulations, judgement)

	// 5. Fuse signals into the final flag
	requiresCompliance := FuseDecision(judgement, riskScore, regulations)

	// 6. Affected regions and evidence
	regions := affectedRegions(regulations, judgement)
	evidence := a.composer.Compose(annotated, regulations, judgement)

	names := make([]string, 0, len(regulations))
	for _, reg := range regulations {
		names = append(names, reg.Name)
	}

	return &models.AnalysisResult{
		RequiresGeoCompliance: requiresCompliance,
		Reasoning:             judgement.Reasoning,
		RelatedRegulations:    names,
		RiskScore:             riskScore,
		RegionsAffected:       regions,
		Evidence:              evidence,
		JargonResolved:        jargonResolved,
	}
}

// judge routes to the remote reasoner when configured, falling back on an
// explicit unavailable outcome.
func (a *Analyzer) judge(ctx context.Context, annotated string, regulations []models.Regulation) (models.Judgement, error) {
	if a.remote != nil {
		judgement, err := a.remote.Judge(ctx, annotated, regulations)
		if err == nil {
			return judgement, nil
		}
		if !errors.Is(err, reasoner.ErrUnavailable) {
			return models.Judgement{}, err
		}
		log.Printf("Warning: remote reasoner unavailable, using deterministic fallback: %v", err)
	}
	return a.fallback.Judge(ctx, annotated, regulations)
}

// affectedRegions returns the sorted, deduplicated union of the retrieved
// regulations' jurisdictions and the judgement's likely regions.
func affectedRegions(regulations []models.Regulation, judgement models.Judgement) []string {
	seen := make(map[string]bool)
	regions := []string{}
	for _, reg := range regulations {
		if !seen[reg.Jurisdiction] {
			seen[reg.Jurisdiction] = true
			regions = append(regions, reg.Jurisdiction)
		}
	}
	for _, region := range judgement.LikelyRegions {
		if !seen[region] {
			seen[region] = true
			regions = append(regions, region)
		}
	}
	sort.Strings(regions)
	return regions
}

// BatchFeature is one feature in a batch analysis request
type BatchFeature struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	PRD         string `json:"prd"`
	TRD         string `json:"trd"`
}

// AnalyzeBatch analyzes features concurrently, bounded by the given worker
// limit (default 4 when limit <= 0). Results are returned in input order; no
// cross-record ordering is guaranteed during execution.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, features []BatchFeature, concurrency int) []*models.AnalysisResult {
	if concurrency <= 0 {
		concurrency = defaultBatchConcurrency
	}

	results := make([]*models.AnalysisResult, len(features))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, feature := range features {
		wg.Add(1)
		go func(i int, f BatchFeature) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = a.Analyze(ctx, f.Title, f.Description, f.PRD, f.TRD)
		}(i, feature)
	}
	wg.Wait()

	return results
}
