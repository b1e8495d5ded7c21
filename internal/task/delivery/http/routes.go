package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Mutating routes go through Auth; everything is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("/confirm", mw.Auth(), h.Confirm)
		tasks.GET("", h.List)
		tasks.POST("/:id/complete", mw.Auth(), h.Complete)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
	}
}
