package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sched := rg.Group("/schedule", mw.RateLimit())
	{
		sched.POST("/build", h.Build)
		sched.POST("/export", mw.Auth(), h.Export)
	}
}
