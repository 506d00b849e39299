package http

import (
	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,max=1000"`
}

func (r parseReq) validate() error { return nil }

// ---

// --- Response DTOs ---

type commandResp struct {
	Type        model.CommandType `json:"type"`
	Index       int               `json:"index,omitempty"`
	Description string            `json:"description,omitempty"`
	Due         string            `json:"due,omitempty"`
	Start       string            `json:"start,omitempty"`
	End         string            `json:"end,omitempty"`
}

func (h *handler) newCommandResp(cmd model.Command) commandResp {
	return commandResp{
		Type:        cmd.Type,
		Index:       cmd.Index,
		Description: cmd.Description,
		Due:         cmd.Due,
		Start:       cmd.Start,
		End:         cmd.End,
	}
}

type taskResp struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
	Due         string `json:"due,omitempty"`
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Rendered    string `json:"rendered"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Done:        t.Done,
		Due:         t.Due,
		Start:       t.Start,
		End:         t.End,
		Rendered:    t.Render(),
	}
}

type executeResp struct {
	Command      commandResp `json:"command"`
	Reply        string      `json:"reply"`
	Tasks        []taskResp  `json:"tasks,omitempty"`
	Task         *taskResp   `json:"task,omitempty"`
	CalendarLink string      `json:"calendar_link,omitempty"`
}

func (h *handler) newExecuteResp(cmd model.Command, out tasklist.ExecuteOutput) executeResp {
	resp := executeResp{
		Command:      h.newCommandResp(cmd),
		Reply:        out.Reply,
		CalendarLink: out.CalendarLink,
	}
	for _, t := range out.Tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	if out.Task != nil {
		t := newTaskResp(*out.Task)
		resp.Task = &t
	}
	return resp
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListTasksResp(tasks []model.Task) listTasksResp {
	resp := listTasksResp{Total: len(tasks)}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, newTaskResp(t))
	}
	return resp
}
