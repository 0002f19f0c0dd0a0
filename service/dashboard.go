package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"geocompliance-backend/models"
)

// AnalysisLister reads the persisted audit trail
type AnalysisLister interface {
	ListAll(ctx context.Context) ([]models.Analysis, error)
	ListRecent(ctx context.Context, limit int) ([]models.Analysis, error)
}

const (
	// recentAnalysesCount bounds the recent-analyses panel
	recentAnalysesCount = 10

	// topRegionsCount bounds the region distribution panel
	topRegionsCount = 10
)

// DashboardStats is the aggregated view of the audit trail
type DashboardStats struct {
	TotalFeatures      int               `json:"total_features"`
	FlaggedCount       int               `json:"flagged_count"`
	FlaggedPercentage  float64           `json:"flagged_percentage"`
	RiskDistribution   map[string]int    `json:"risk_distribution"`
	RegionDistribution map[string]int    `json:"region_distribution"`
	RecentAnalyses     []models.Analysis `json:"recent_analyses"`
}

// DashboardService aggregates audit records for dashboard visualization
type DashboardService struct {
	analyses AnalysisLister
}

// NewDashboardService creates a dashboard service over the audit trail
func NewDashboardService(analyses AnalysisLister) *DashboardService {
	return &DashboardService{analyses: analyses}
}

// riskBand buckets a risk score: Low [0,30), Medium [30,70), High [70,100]
func riskBand(score int) string {
	switch {
	case score < 30:
		return "Low"
	case score < 70:
		return "Medium"
	default:
		return "High"
	}
}

// Stats computes the dashboard aggregates from the full audit trail
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	analyses, err := s.analyses.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load audit trail: %w", err)
	}

	stats := &DashboardStats{
		RiskDistribution:   make(map[string]int),
		RegionDistribution: make(map[string]int),
		RecentAnalyses:     []models.Analysis{},
	}
	if len(analyses) == 0 {
		return stats, nil
	}

	regionCounts := make(map[string]int)
	for _, analysis := range analyses {
		stats.TotalFeatures++
		if analysis.RequiresGeoCompliance {
			stats.FlaggedCount++
		}
		stats.RiskDistribution[riskBand(analysis.RiskScore)]++
		for _, region := range analysis.RegionsAffected {
			regionCounts[region]++
		}
	}

	percentage := float64(stats.FlaggedCount) / float64(stats.TotalFeatures) * 100
	stats.FlaggedPercentage = math.Round(percentage*10) / 10

	stats.RegionDistribution = topRegions(regionCounts, topRegionsCount)

	recent, err := s.analyses.ListRecent(ctx, recentAnalysesCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent analyses: %w", err)
	}
	stats.RecentAnalyses = recent

	return stats, nil
}

// topRegions keeps the max most frequent regions, ties broken by name
func topRegions(counts map[string]int, max int) map[string]int {
	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool {
		if counts[regions[i]] != counts[regions[j]] {
			return counts[regions[i]] > counts[regions[j]]
		}
		return regions[i] < regions[j]
	})
	if len(regions) > max {
		regions = regions[:max]
	}

	top := make(map[string]int, len(regions))
	for _, region := range regions {
		top[region] = counts[region]
	}
	return top
}
