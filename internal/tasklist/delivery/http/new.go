package http

import (
	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/tasklist"
	pkgLog "shadowbuddy/pkg/log"
)

// Handler is the public interface for the task list HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
	Execute(c *gin.Context)
	ListTasks(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	parser interpreter.Parser
	uc     tasklist.UseCase
}

// New creates a new HTTP handler for the task list domain.
func New(l pkgLog.Logger, parser interpreter.Parser, uc tasklist.UseCase) *handler {
	return &handler{
		l:      l,
		parser: parser,
		uc:     uc,
	}
}
