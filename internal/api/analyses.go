package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/trichocare/backend/internal/middleware"
	"github.com/trichocare/backend/internal/service"
	"github.com/trichocare/backend/internal/types"
)

// AnalysisHandler handles hair analysis intake and the generated reports.
type AnalysisHandler struct {
	analyses    service.IAnalysisService
	authService service.IAuthService
	roles       middleware.RoleLookup
	limiter     *middleware.RateLimiter
}

func NewAnalysisHandler(analyses service.IAnalysisService, authService service.IAuthService, roles middleware.RoleLookup, limiter *middleware.RateLimiter) *AnalysisHandler {
	return &AnalysisHandler{
		analyses:    analyses,
		authService: authService,
		roles:       roles,
		limiter:     limiter,
	}
}

func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	analyses := router.Group("/analyses")
	analyses.Use(middleware.AuthMiddleware(h.authService))
	{
		create := []gin.HandlerFunc{middleware.RequirePermission(h.roles, "Testing", "create")}
		if h.limiter != nil {
			create = append(create, h.limiter.RateLimitMiddleware())
		}
		analyses.POST("", append(create, h.CreateAnalysis)...)

		analyses.GET("", middleware.RequirePermission(h.roles, "Testing", "read"), h.ListAnalyses)
		analyses.GET("/:testId", middleware.RequirePermission(h.roles, "Testing", "read"), h.GetAnalysis)
		analyses.POST("/:testId/regenerate", middleware.RequirePermission(h.roles, "Testing", "update"), h.RegenerateReport)
		analyses.PUT("/:testId/notes", middleware.RequirePermission(h.roles, "Testing", "update"), h.UpdateNotes)
		analyses.DELETE("/:testId", middleware.RequirePermission(h.roles, "Testing", "delete"), h.DeleteAnalysis)
	}
}

// CreateAnalysis takes in a questionnaire, stores the optional scalp image
// and returns the record with its report already generated.
func (h *AnalysisHandler) CreateAnalysis(c *gin.Context) {
	var req types.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	analysis, err := h.analyses.CreateAnalysis(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create analysis"})
		return
	}
	c.JSON(http.StatusCreated, analysis)
}

func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	var customerID *uuid.UUID
	if raw := c.Query("customer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
			return
		}
		customerID = &id
	}
	analyses, err := h.analyses.ListAnalyses(c.Request.Context(), customerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch analyses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": analyses})
}

func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.analyses.GetAnalysis(c.Request.Context(), c.Param("testId"))
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch analysis"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// RegenerateReport rebuilds the report from the record's current answers.
func (h *AnalysisHandler) RegenerateReport(c *gin.Context) {
	analysis, err := h.analyses.RegenerateReport(c.Request.Context(), c.Param("testId"))
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to regenerate report"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *AnalysisHandler) UpdateNotes(c *gin.Context) {
	var req types.UpdateAnalysisNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	analysis, err := h.analyses.UpdateClinicianNotes(c.Request.Context(), c.Param("testId"), req.ClinicianNotes)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update notes"})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *AnalysisHandler) DeleteAnalysis(c *gin.Context) {
	if err := h.analyses.DeleteAnalysis(c.Request.Context(), c.Param("testId")); err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete analysis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "analysis deleted"})
}
