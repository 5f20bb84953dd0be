package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmtrack/internal/service/report"
)

// ReportHandler serves generated report documents as downloadable text files.
type ReportHandler struct {
	svc    *report.Service
	logger *zap.Logger
}

// NewReportHandler constructs the report HTTP adapter.
func NewReportHandler(svc *report.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Download generates the requested report and delivers it as an attachment.
func (h *ReportHandler) Download(c *gin.Context) {
	kind := report.Kind(c.Param("kind"))
	if !kind.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown report kind"})
		return
	}

	doc, err := h.svc.Generate(c.Request.Context(), kind)
	if err != nil {
		h.logger.Error("failed to generate report", zap.String("kind", string(kind)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc.Content))
}
