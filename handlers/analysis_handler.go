package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"geocompliance-backend/models"
	"geocompliance-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AnalysisStore persists and reads audit records
type AnalysisStore interface {
	Create(ctx context.Context, analysis *models.Analysis) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Analysis, error)
}

// AnalysisHandler handles HTTP requests for compliance analyses
type AnalysisHandler struct {
	analyzer  *service.Analyzer
	store     AnalysisStore
	exports   *service.ExportService
	dashboard *service.DashboardService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer *service.Analyzer, store AnalysisStore, exports *service.ExportService, dashboard *service.DashboardService) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:  analyzer,
		store:     store,
		exports:   exports,
		dashboard: dashboard,
	}
}

// AnalyzeFeatureRequest represents the request body for analyzing a feature
type AnalyzeFeatureRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	PRD         string `json:"prd"`
	TRD         string `json:"trd"`
}

// AnalysisResponse is the wire shape of one analyzed feature
type AnalysisResponse struct {
	FeatureID uuid.UUID `json:"feature_id"`
	Title     string    `json:"title"`
	models.AnalysisResult
	Timestamp time.Time `json:"timestamp"`
}

// BatchAnalysisRequest represents the request body for batch analysis
type BatchAnalysisRequest struct {
	Features []service.BatchFeature `json:"features" binding:"required,dive"`
}

// AnalyzeFeature handles POST /api/analyses
func (h *AnalysisHandler) AnalyzeFeature(c *gin.Context) {
	var req AnalyzeFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	featureID := uuid.New()
	result := h.analyzer.Analyze(c.Request.Context(), req.Title, req.Description, req.PRD, req.TRD)

	analysis := models.NewAnalysis(featureID, req.Title, result)
	if err := h.store.Create(c.Request.Context(), analysis); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PERSIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": AnalysisResponse{
			FeatureID:      featureID,
			Title:          req.Title,
			AnalysisResult: *result,
			Timestamp:      analysis.CreatedAt,
		},
	})
}

// AnalyzeBatch handles POST /api/analyses/batch
func (h *AnalysisHandler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	results := h.analyzer.AnalyzeBatch(c.Request.Context(), req.Features, 0)

	// Audit writes are serialized; batch analysis itself ran concurrently
	responses := make([]AnalysisResponse, 0, len(results))
	analyses := make([]models.Analysis, 0, len(results))
	for i, result := range results {
		featureID := uuid.New()
		analysis := models.NewAnalysis(featureID, req.Features[i].Title, result)
		if err := h.store.Create(c.Request.Context(), analysis); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PERSIST_FAILED",
					"message": err.Error(),
				},
			})
			return
		}
		analyses = append(analyses, *analysis)
		responses = append(responses, AnalysisResponse{
			FeatureID:      featureID,
			Title:          req.Features[i].Title,
			AnalysisResult: *result,
			Timestamp:      analysis.CreatedAt,
		})
	}

	var csvExport string
	if h.exports != nil {
		export, err := h.exports.ExportCSV(c.Request.Context(), analyses)
		if err != nil {
			// The analyses are already persisted; a failed export is not fatal
			log.Printf("Warning: CSV export failed: %v", err)
		} else {
			csvExport = export.Filename
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"message":    "Analyzed features",
			"count":      len(responses),
			"results":    responses,
			"csv_export": csvExport,
		},
	})
}

// GetAnalysis handles GET /api/analyses/:id
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid analysis ID format",
			},
		})
		return
	}

	analysis, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Analysis not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "FETCH_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    analysis,
	})
}

// GetDashboard handles GET /api/dashboard
func (h *AnalysisHandler) GetDashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DASHBOARD_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}
