package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"geocompliance-backend/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles HTTP requests for export downloads
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// defaultExportListLimit bounds the export listing when no limit is given
const defaultExportListLimit = 20

// ListExports handles GET /api/exports
func (h *ExportHandler) ListExports(c *gin.Context) {
	limit := defaultExportListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	exports, err := h.exports.ListRecent(c.Request.Context(), limit)
	if err != nil {
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
		"data":    exports,
	})
}

// DownloadExport handles GET /api/exports/:filename
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" || filepath.Base(filename) != filename || !strings.HasSuffix(filename, ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_FILENAME",
				"message": "Invalid export filename",
			},
		})
		return
	}

	reader, err := h.exports.Download(c.Request.Context(), filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Export not found",
			},
		})
		return
	}
	defer reader.Close()

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)
	io.Copy(c.Writer, reader)
}
