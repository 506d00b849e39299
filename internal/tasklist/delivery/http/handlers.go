package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shadowbuddy/pkg/response"
)

// Parse godoc
// @Summary     Interpret an utterance
// @Description Classifies the utterance and returns the structured command without executing it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd, err := h.parser.Parse(ctx, req.Text)
	if err != nil {
		h.l.Warnf(ctx, "http.delivery.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCommandResp(cmd))
}

// Execute godoc
// @Summary     Interpret and execute an utterance
// @Description Classifies the utterance, applies the command to the task list, and returns the outcome.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Utterance"
// @Success     200 {object} executeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Task Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Execute(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cmd, err := h.parser.Parse(ctx, req.Text)
	if err != nil {
		h.l.Warnf(ctx, "http.delivery.Execute.Parse: %v", err)
		h.respondError(c, err)
		return
	}

	out, err := h.uc.Execute(ctx, scopeFrom(c), cmd)
	if err != nil {
		h.l.Errorf(ctx, "http.delivery.Execute: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExecuteResp(cmd, out))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns the current task list in insertion order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listTasksResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.Tasks(ctx, scopeFrom(c))
	if err != nil {
		h.l.Errorf(ctx, "http.delivery.ListTasks: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListTasksResp(tasks))
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch statusFor(err) {
	case http.StatusNotFound:
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: err.Error()})
	case http.StatusInternalServerError:
		response.InternalError(c, err)
	default:
		response.Error(c, err, nil)
	}
}
