package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prasetya/siaklake/internal/config"
	"github.com/prasetya/siaklake/internal/pkg/logger"
)

// NewRouter builds the dashboard HTTP engine with all routes attached.
func NewRouter(cfg *config.Config, db *pgxpool.Pool) *gin.Engine {
	gin.SetMode(cfg.Dashboard.Mode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	repo := NewMetricsRepository(db)
	controller := NewMetricsController(repo)
	auth := NewAuthMiddleware(cfg.Dashboard.JWTSecret)

	api := router.Group("/api/v1")
	api.Use(auth.JWTAuth())
	{
		metrics := api.Group("/metrics")
		{
			metrics.GET("/overview", controller.GetOverview)
			metrics.GET("/academic", controller.GetAcademic)
			metrics.GET("/financial", controller.GetFinancial)
			metrics.GET("/enrollment", controller.GetEnrollment)
			metrics.GET("/faculties", controller.GetFaculties)
			metrics.GET("/semesters", controller.GetSemesters)
			metrics.GET("/courses", controller.GetTopCourses)
		}
	}

	return router
}

// requestLogger logs each request through the structured logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
