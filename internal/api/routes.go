package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtregistry/admin-api/internal/cache"
	"github.com/courtregistry/admin-api/internal/config"
	"github.com/courtregistry/admin-api/pkg/logger"
)

// RequestIDKey is the context key under which the per-request ID is
// stored by the server middleware.
const RequestIDKey = "request_id"

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cache cache.Cache, logger *logger.Logger, cfg *config.Config) {
	// Create handlers
	h := NewHandlers(db, cache, logger, cfg)

	// Service routes
	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cache/stats", h.CacheStats)
	}

	// Admin routes
	admin := router.Group("/admin")
	{
		admin.GET("/cause-lists", h.ListCauseLists)
		admin.GET("/cause-lists/calendar", h.CauseListCalendar)
		admin.POST("/cause-lists", h.CreateCauseList)
		admin.GET("/cause-lists/:id", h.GetCauseList)
		admin.PUT("/cause-lists/:id", h.UpdateCauseList)
		admin.DELETE("/cause-lists/:id", h.DeleteCauseList)

		admin.GET("/registries", h.ListRegistries)
		admin.POST("/registries", h.CreateRegistry)
		admin.PUT("/registries/:id", h.UpdateRegistry)
		admin.DELETE("/registries/:id", h.DeleteRegistry)

		admin.GET("/courts", h.ListCourts)
		admin.POST("/courts", h.CreateCourt)
		admin.PUT("/courts/:id", h.UpdateCourt)
		admin.DELETE("/courts/:id", h.DeleteCourt)

		admin.GET("/judges", h.ListJudges)
		admin.POST("/judges", h.CreateJudge)
		admin.PUT("/judges/:id", h.UpdateJudge)
		admin.DELETE("/judges/:id", h.DeleteJudge)
	}
}
