package dashboard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// MetricsController exposes the dashboard metrics endpoints.
type MetricsController struct {
	repo *MetricsRepository
}

// NewMetricsController creates a new MetricsController
func NewMetricsController(repo *MetricsRepository) *MetricsController {
	return &MetricsController{repo: repo}
}

// GetOverview handles GET /api/v1/metrics/overview
func (c *MetricsController) GetOverview(ctx *gin.Context) {
	metrics, err := c.repo.GetBasicMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get overview metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load overview metrics"})
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

// GetAcademic handles GET /api/v1/metrics/academic
func (c *MetricsController) GetAcademic(ctx *gin.Context) {
	metrics, err := c.repo.GetAcademicMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get academic metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load academic metrics"})
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

// GetFinancial handles GET /api/v1/metrics/financial
func (c *MetricsController) GetFinancial(ctx *gin.Context) {
	metrics, err := c.repo.GetFinancialMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get financial metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load financial metrics"})
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

// GetEnrollment handles GET /api/v1/metrics/enrollment
func (c *MetricsController) GetEnrollment(ctx *gin.Context) {
	metrics, err := c.repo.GetEnrollmentMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get enrollment metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load enrollment metrics"})
		return
	}
	ctx.JSON(http.StatusOK, metrics)
}

// GetFaculties handles GET /api/v1/metrics/faculties
func (c *MetricsController) GetFaculties(ctx *gin.Context) {
	metrics, err := c.repo.GetFacultyMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get faculty metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load faculty metrics"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"faculties": metrics})
}

// GetSemesters handles GET /api/v1/metrics/semesters
func (c *MetricsController) GetSemesters(ctx *gin.Context) {
	metrics, err := c.repo.GetSemesterMetrics(ctx.Request.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get semester metrics")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load semester metrics"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"semesters": metrics})
}

// GetTopCourses handles GET /api/v1/metrics/courses?limit=N
func (c *MetricsController) GetTopCourses(ctx *gin.Context) {
	limit := uint64(10)
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > 100 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer between 1 and 100"})
			return
		}
		limit = parsed
	}

	courses, err := c.repo.ListTopCourses(ctx.Request.Context(), limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get top courses")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load top courses"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": courses})
}
