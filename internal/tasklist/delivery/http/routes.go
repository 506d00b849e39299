package http

import (
	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/parse", mw.RateLimit(), h.Parse)
	rg.POST("/commands", mw.RateLimit(), h.Execute)
	rg.GET("/tasks", mw.RateLimit(), h.ListTasks)
}
