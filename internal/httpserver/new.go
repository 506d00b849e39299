package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/middleware"
	tasklistHTTP "shadowbuddy/internal/tasklist/delivery/http"
	pkgLog "shadowbuddy/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Task list domain
	taskHandler tasklistHTTP.Handler

	// Telegram webhook
	telegramHandler interface {
		HandleWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Task list domain
	TaskHandler tasklistHTTP.Handler

	// Telegram webhook; nil disables the route
	TelegramHandler interface {
		HandleWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		taskHandler:     cfg.TaskHandler,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	return nil
}
