package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"geocompliance-backend/models"
	"geocompliance-backend/repository"
	"geocompliance-backend/storage"

	"github.com/google/uuid"
)

// exportColumns is the fixed CSV header of compliance exports
var exportColumns = []string{
	"Feature ID",
	"Title",
	"Requires Geo-Compliance",
	"Risk Score",
	"Reasoning",
	"Related Regulations",
	"Regions Affected",
	"Evidence",
	"Jargon Resolved",
	"Timestamp",
}

// ExportService renders analysis results to CSV and writes the artifact
// through the configured storage backend.
type ExportService struct {
	storage    storage.Storage
	exportRepo *repository.ExportRepository
}

// NewExportService creates an export service. The repository may be nil when
// export records are not persisted (demo and test use).
func NewExportService(store storage.Storage, exportRepo *repository.ExportRepository) *ExportService {
	return &ExportService{
		storage:    store,
		exportRepo: exportRepo,
	}
}

// ExportCSV renders the analyses to a CSV artifact, stores it, and records
// the export.
func (s *ExportService) ExportCSV(ctx context.Context, analyses []models.Analysis) (*models.Export, error) {
	var buf bytes.Buffer
	if err := writeCSV(&buf, analyses); err != nil {
		return nil, fmt.Errorf("failed to render CSV export: %w", err)
	}

	id := uuid.New()
	filename := fmt.Sprintf("compliance_analysis_%s.csv", time.Now().Format("20060102_150405"))

	storagePath, err := s.storage.Upload(ctx, id, filename, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to store CSV export: %w", err)
	}

	export := &models.Export{
		ID:           id,
		Filename:     filename,
		StoragePath:  storagePath,
		FeatureCount: len(analyses),
	}

	if s.exportRepo != nil {
		if err := s.exportRepo.Create(ctx, export); err != nil {
			return nil, fmt.Errorf("failed to record CSV export: %w", err)
		}
	} else {
		export.CreatedAt = time.Now()
	}

	return export, nil
}

// ListRecent returns the most recent export records up to limit
func (s *ExportService) ListRecent(ctx context.Context, limit int) ([]models.Export, error) {
	if s.exportRepo == nil {
		return []models.Export{}, nil
	}
	return s.exportRepo.List(ctx, limit)
}

// Download opens a previously generated export by filename
func (s *ExportService) Download(ctx context.Context, filename string) (io.ReadCloser, error) {
	if s.exportRepo == nil {
		return nil, fmt.Errorf("export records not available")
	}

	export, err := s.exportRepo.GetByFilename(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("export not found: %w", err)
	}

	return s.storage.Download(ctx, export.StoragePath)
}

// writeCSV renders analyses in the fixed export column order
func writeCSV(w io.Writer, analyses []models.Analysis) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportColumns); err != nil {
		return err
	}

	for _, analysis := range analyses {
		record := []string{
			analysis.ID.String(),
			analysis.FeatureTitle,
			strconv.FormatBool(analysis.RequiresGeoCompliance),
			strconv.Itoa(analysis.RiskScore),
			analysis.Reasoning,
			strings.Join(analysis.RelatedRegulations, ", "),
			strings.Join(analysis.RegionsAffected, ", "),
			analysis.Evidence,
			formatJargon(analysis.JargonResolved),
			analysis.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatJargon renders the resolved jargon map in stable term order
func formatJargon(jargonResolved map[string]string) string {
	terms := make([]string, 0, len(jargonResolved))
	for term := range jargonResolved {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	pairs := make([]string, 0, len(terms))
	for _, term := range terms {
		pairs = append(pairs, fmt.Sprintf("%s -> %s", term, jargonResolved[term]))
	}
	return strings.Join(pairs, ", ")
}
