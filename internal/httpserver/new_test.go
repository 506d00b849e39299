package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type noopTaskHandler struct{}

func (noopTaskHandler) Parse(c *gin.Context)     { c.Status(http.StatusOK) }
func (noopTaskHandler) Execute(c *gin.Context)   { c.Status(http.StatusOK) }
func (noopTaskHandler) ListTasks(c *gin.Context) { c.Status(http.StatusOK) }

func TestNew(t *testing.T) {
	base := Config{
		Logger:      &mockLogger{},
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		TaskHandler: noopTaskHandler{},
	}

	t.Run("Valid Config", func(t *testing.T) {
		if _, err := New(base.Logger, base); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Missing Port", func(t *testing.T) {
		cfg := base
		cfg.Port = 0
		if _, err := New(cfg.Logger, cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("Missing Task Handler", func(t *testing.T) {
		cfg := base
		cfg.TaskHandler = nil
		if _, err := New(cfg.Logger, cfg); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestSystemRoutes(t *testing.T) {
	srv, err := New(&mockLogger{}, Config{
		Logger:      &mockLogger{},
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		Middleware:  middleware.New(&mockLogger{}, 0),
		TaskHandler: noopTaskHandler{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.gin.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: got status %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), ServiceName) {
			t.Errorf("%s: got body %s", path, w.Body.String())
		}
	}
}
