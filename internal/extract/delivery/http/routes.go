package http

import (
	"github.com/gin-gonic/gin"

	"mail-task-planner/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/extract", mw.RateLimit(), h.Extract)
}
