package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"easytax-service/internal/advisory"
	"easytax-service/internal/models"
	"easytax-service/internal/services"
)

// ITRReportBuilder generates ITR reports
type ITRReportBuilder interface {
	BuildReport(ctx context.Context, tenantID string, req models.ITRReportRequest) (*models.ITRReport, error)
}

// GSTReportBuilder generates GST reports
type GSTReportBuilder interface {
	BuildReport(ctx context.Context, tenantID string, req models.GSTReportRequest) (*models.GSTReport, error)
}

// AdvisoryService serves the tip catalog and the tax planner
type AdvisoryService interface {
	FetchTips(ctx context.Context, category advisory.TipCategory) ([]models.TaxTip, bool)
	PlanInvestments(ctx context.Context, req models.PlannerRequest) ([]models.InvestmentSuggestion, bool)
}

// ReportStore reads stored reports and form snapshots
type ReportStore interface {
	GetITRReport(ctx context.Context, id uuid.UUID) (*models.ITRReport, error)
	GetGSTReport(ctx context.Context, id uuid.UUID) (*models.GSTReport, error)
	ListITRReports(ctx context.Context, tenantID string) ([]models.ITRReport, error)
	ListGSTReports(ctx context.Context, tenantID string) ([]models.GSTReport, error)
	SaveSnapshot(ctx context.Context, tenantID, key, payload string) error
	GetSnapshot(ctx context.Context, tenantID, key string) (string, error)
}

// ReportHandler handles report generation and advisory HTTP requests
type ReportHandler struct {
	itr     ITRReportBuilder
	gst     GSTReportBuilder
	advisor AdvisoryService
	store   ReportStore
}

// NewReportHandler creates a new report handler
func NewReportHandler(itr ITRReportBuilder, gst GSTReportBuilder, advisor AdvisoryService, store ReportStore) *ReportHandler {
	return &ReportHandler{
		itr:     itr,
		gst:     gst,
		advisor: advisor,
		store:   store,
	}
}

// GenerateITRReport handles POST /api/v1/itr/report
func (h *ReportHandler) GenerateITRReport(c *gin.Context) {
	var req models.ITRReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	report, err := h.itr.BuildReport(c.Request.Context(), getTenantID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingName) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate ITR report",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GenerateGSTReport handles POST /api/v1/gst/report
func (h *ReportHandler) GenerateGSTReport(c *gin.Context) {
	var req models.GSTReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	report, err := h.gst.BuildReport(c.Request.Context(), getTenantID(c), req)
	if err != nil {
		if errors.Is(err, services.ErrMissingBusinessName) || errors.Is(err, services.ErrInvalidGSTIN) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to generate GST report",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, report)
}

// ValidateGSTIN handles POST /api/v1/gst/validate-gstin
func (h *ReportHandler) ValidateGSTIN(c *gin.Context) {
	var req models.ValidateGSTINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ValidateGSTINResponse{
		GSTIN: req.GSTIN,
		Valid: services.ValidateGSTIN(req.GSTIN),
	})
}

// GetTips handles GET /api/v1/tips/:category
func (h *ReportHandler) GetTips(c *gin.Context) {
	category := advisory.ParseTipCategory(c.Param("category"))
	tips, fallback := h.advisor.FetchTips(c.Request.Context(), category)

	c.JSON(http.StatusOK, models.TipsResponse{
		Category: string(category),
		Tips:     tips,
		Fallback: fallback,
	})
}

// PlanInvestments handles POST /api/v1/planner/suggestions
func (h *ReportHandler) PlanInvestments(c *gin.Context) {
	var req models.PlannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	suggestions, fallback := h.advisor.PlanInvestments(c.Request.Context(), req)
	c.JSON(http.StatusOK, models.PlannerResponse{
		Suggestions: suggestions,
		Fallback:    fallback,
	})
}

// ListReports handles GET /api/v1/reports?type=itr|gst
func (h *ReportHandler) ListReports(c *gin.Context) {
	tenantID := getTenantID(c)

	switch c.DefaultQuery("type", "itr") {
	case "itr":
		reports, err := h.store.ListITRReports(c.Request.Context(), tenantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to list reports",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, reports)
	case "gst":
		reports, err := h.store.ListGSTReports(c.Request.Context(), tenantID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to list reports",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, reports)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid report type",
			"message": "type must be itr or gst",
		})
	}
}

// GetReport handles GET /api/v1/reports/:id?type=itr|gst
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid report ID",
			"message": err.Error(),
		})
		return
	}

	switch c.DefaultQuery("type", "itr") {
	case "itr":
		report, err := h.store.GetITRReport(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Report not found",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, report)
	case "gst":
		report, err := h.store.GetGSTReport(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "Report not found",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, report)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid report type",
			"message": "type must be itr or gst",
		})
	}
}

// PutSnapshot handles PUT /api/v1/snapshots/:key
func (h *ReportHandler) PutSnapshot(c *gin.Context) {
	var req models.SnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"message": err.Error(),
		})
		return
	}

	if err := h.store.SaveSnapshot(c.Request.Context(), getTenantID(c), c.Param("key"), req.Payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save snapshot",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Snapshot saved"})
}

// GetSnapshot handles GET /api/v1/snapshots/:key
func (h *ReportHandler) GetSnapshot(c *gin.Context) {
	payload, err := h.store.GetSnapshot(c.Request.Context(), getTenantID(c), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Snapshot not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key":     c.Param("key"),
		"payload": payload,
	})
}

// Helper function to get tenant ID from context
func getTenantID(c *gin.Context) string {
	tenantID := c.GetHeader("X-Tenant-ID")
	if tenantID == "" {
		// Default to demo tenant for development
		return "00000000-0000-0000-0000-000000000001"
	}
	return tenantID
}
