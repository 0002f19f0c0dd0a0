package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"geocompliance-backend/corpus"
	"geocompliance-backend/jargon"
	"geocompliance-backend/reasoner"
	"geocompliance-backend/service"
)

type sampleFeature struct {
	title       string
	description string
}

var sampleFeatures = []sampleFeature{
	{
		title: "Curfew Mode for Teen Users",
		description: "Implement curfew mode with an age gate to detect each minor user and " +
			"restrict late-night access in Utah. Uses geo-blocking for the regional " +
			"rollout and integrates with Jellybean for parental consent notifications.",
	},
	{
		title: "Enhanced Personalization Engine",
		description: "Improve content recommendations using behavioral data and user " +
			"profiling. Collects browsing history and interaction patterns to train " +
			"the recommendation model for EU users.",
	},
	{
		title: "Basic Video Upload Service",
		description: "Standard video upload functionality with format conversion and " +
			"quality optimization. Supports common video formats and automatic " +
			"thumbnail generation.",
	},
}

func main() {
	ctx := context.Background()

	records, err := corpus.Load(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to load regulation corpus: %v", err)
	}
	index := corpus.NewIndex()
	if err := index.Build(records); err != nil {
		log.Fatalf("Failed to build regulation index: %v", err)
	}

	scorer := service.NewRiskScorer(service.DefaultRiskWeights(), service.DefaultRiskKeywords())
	analyzer := service.NewAnalyzer(
		service.WithJargonResolver(jargon.NewResolver()),
		service.WithRetriever(index),
		service.WithRemoteReasoner(reasoner.NewRemoteReasoner(nil)),
		service.WithFallbackReasoner(reasoner.NewFallbackReasoner(service.DefaultRiskKeywords())),
		service.WithRiskScorer(scorer),
		service.WithEvidenceComposer(service.NewEvidenceComposer(scorer)),
	)

	fmt.Println("Geo-Compliance Triage Demo")
	fmt.Println(strings.Repeat("=", 60))

	flagged := 0
	for i, feature := range sampleFeatures {
		result := analyzer.Analyze(ctx, feature.title, feature.description, "", "")
		if result.RequiresGeoCompliance {
			flagged++
		}

		fmt.Printf("\n[%d/%d] %s\n", i+1, len(sampleFeatures), feature.title)
		fmt.Printf("    Requires geo-compliance: %v\n", result.RequiresGeoCompliance)
		fmt.Printf("    Risk score: %d/100\n", result.RiskScore)
		if len(result.RelatedRegulations) > 0 {
			fmt.Printf("    Related regulations: %s\n", strings.Join(result.RelatedRegulations, ", "))
		}
		if len(result.RegionsAffected) > 0 {
			fmt.Printf("    Regions affected: %s\n", strings.Join(result.RegionsAffected, ", "))
		}
		fmt.Printf("    Reasoning: %s\n", result.Reasoning)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("Analyzed %d features, %d flagged for geo-compliance review\n", len(sampleFeatures), flagged)
}
