package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist"
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

type stubParser struct {
	cmd model.Command
	err error
}

func (s *stubParser) Parse(ctx context.Context, utterance string) (model.Command, error) {
	return s.cmd, s.err
}

type stubUseCase struct {
	out      tasklist.ExecuteOutput
	execErr  error
	tasks    []model.Task
	tasksErr error
	lastSC   model.Scope
}

func (s *stubUseCase) Execute(ctx context.Context, sc model.Scope, cmd model.Command) (tasklist.ExecuteOutput, error) {
	s.lastSC = sc
	return s.out, s.execErr
}

func (s *stubUseCase) Tasks(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	s.lastSC = sc
	return s.tasks, s.tasksErr
}

func perform(t *testing.T, h Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}

	switch {
	case strings.HasSuffix(path, "/parse"):
		h.Parse(c)
	case strings.HasSuffix(path, "/commands"):
		h.Execute(c)
	default:
		h.ListTasks(c)
	}
	return w
}

func TestParse(t *testing.T) {
	t.Run("Returns Structured Command", func(t *testing.T) {
		h := New(&mockLogger{}, &stubParser{cmd: model.NewDeadlineCommand("return book", "Sep 16 2025 18:00")}, &stubUseCase{})

		w := perform(t, h, http.MethodPost, "/api/v1/parse", `{"text":"deadline return book 16/9/2025 1800"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"DEADLINE"`) || !strings.Contains(w.Body.String(), "Sep 16 2025 18:00") {
			t.Errorf("got body %s", w.Body.String())
		}
	})

	t.Run("Missing Text Is Bad Request", func(t *testing.T) {
		h := New(&mockLogger{}, &stubParser{}, &stubUseCase{})

		if w := perform(t, h, http.MethodPost, "/api/v1/parse", `{}`, nil); w.Code != http.StatusBadRequest {
			t.Errorf("got status %d", w.Code)
		}
	})

	t.Run("Interpretation Error Is Bad Request", func(t *testing.T) {
		h := New(&mockLogger{}, &stubParser{err: interpreter.ErrInvalidEventDate}, &stubUseCase{})

		if w := perform(t, h, http.MethodPost, "/api/v1/parse", `{"text":"event x"}`, nil); w.Code != http.StatusBadRequest {
			t.Errorf("got status %d", w.Code)
		}
	})
}

func TestExecute(t *testing.T) {
	t.Run("Executes And Returns Outcome", func(t *testing.T) {
		uc := &stubUseCase{out: tasklist.ExecuteOutput{Reply: "added"}}
		h := New(&mockLogger{}, &stubParser{cmd: model.NewTodoCommand("read book")}, uc)

		w := perform(t, h, http.MethodPost, "/api/v1/commands", `{"text":"todo read book"}`, map[string]string{"X-User-ID": "u7"})
		if w.Code != http.StatusOK {
			t.Fatalf("got status %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"reply":"added"`) {
			t.Errorf("got body %s", w.Body.String())
		}
		if uc.lastSC.UserID != "u7" {
			t.Errorf("scope not taken from header: %+v", uc.lastSC)
		}
	})

	t.Run("Out Of Range Is Not Found", func(t *testing.T) {
		uc := &stubUseCase{execErr: tasklist.ErrIndexOutOfRange}
		h := New(&mockLogger{}, &stubParser{cmd: model.NewIndexCommand(model.CommandMark, 9)}, uc)

		if w := perform(t, h, http.MethodPost, "/api/v1/commands", `{"text":"mark 9"}`, nil); w.Code != http.StatusNotFound {
			t.Errorf("got status %d", w.Code)
		}
	})

	t.Run("Storage Failure Is Internal Error", func(t *testing.T) {
		uc := &stubUseCase{execErr: tasklist.ErrStorage}
		h := New(&mockLogger{}, &stubParser{cmd: model.NewTodoCommand("x")}, uc)

		w := perform(t, h, http.MethodPost, "/api/v1/commands", `{"text":"todo x"}`, nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("got status %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "storage") {
			t.Errorf("internal detail leaked: %s", w.Body.String())
		}
	})
}

func TestListTasks(t *testing.T) {
	uc := &stubUseCase{tasks: []model.Task{
		{ID: "1", Type: model.TaskTodo, Description: "read book"},
	}}
	h := New(&mockLogger{}, &stubParser{}, uc)

	w := perform(t, h, http.MethodGet, "/api/v1/tasks", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var body struct {
		Data struct {
			Tasks []struct {
				Rendered string `json:"rendered"`
			} `json:"tasks"`
			Total int `json:"total"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Data.Total != 1 || body.Data.Tasks[0].Rendered != "[T][ ] read book" {
		t.Errorf("got %+v", body.Data)
	}
}
