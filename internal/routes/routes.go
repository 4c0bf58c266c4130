package routes

import (
	"net/http"

	"vahub_backend/internal/handlers"
	"vahub_backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches every endpoint to the engine. All API routes
// live under /api; health and metrics sit at the root.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		h.Auth.RegisterRoutes(api)
		h.Job.RegisterRoutes(api)
		h.Talent.RegisterRoutes(api)
		h.Application.RegisterRoutes(api)
		h.Admin.RegisterRoutes(api)
		h.Subscription.RegisterRoutes(api)
		h.Message.RegisterRoutes(api)
	}
}
