package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/model"
	"shadowbuddy/internal/tasklist"
	"shadowbuddy/internal/tasklist/usecase"
	pkgResponse "shadowbuddy/pkg/response"
	pkgTelegram "shadowbuddy/pkg/telegram"
)

const (
	replyWelcome = "Hi! Tell me about your tasks in plain language.\nTry: todo buy milk, or: deadline return book 16/9/2025 1800"

	processTimeout = 30 * time.Second
)

// HandleWebhook receives Telegram updates. Telegram retries non-200
// responses, so the update is acknowledged before processing.
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram.delivery.HandleWebhook.ShouldBindJSON: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.Text == "" {
		pkgResponse.OK(c, gin.H{"status": "ignored"})
		return
	}

	go h.processMessage(*update.Message)

	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

func (h *Handler) processMessage(msg pkgTelegram.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	sc := model.Scope{UserID: strconv.FormatInt(msg.Chat.ID, 10)}
	if msg.From != nil {
		sc.Username = msg.From.Username
	}

	reply := h.replyFor(ctx, sc, msg.Text)
	if err := h.bot.SendMessage(ctx, msg.Chat.ID, reply); err != nil {
		h.l.Errorf(ctx, "telegram.delivery.processMessage.SendMessage: %v", err)
	}
}

func (h *Handler) replyFor(ctx context.Context, sc model.Scope, text string) string {
	switch text {
	case "/start":
		return replyWelcome
	case "/help":
		return usecase.ReplyCommandsGuide
	}

	cmd, err := h.parser.Parse(ctx, text)
	if err != nil {
		h.l.Warnf(ctx, "telegram.delivery.replyFor.Parse: %v", err)
		return friendlyError(err)
	}

	out, err := h.uc.Execute(ctx, sc, cmd)
	if err != nil {
		h.l.Errorf(ctx, "telegram.delivery.replyFor.Execute: %v", err)
		return friendlyError(err)
	}

	reply := out.Reply
	if out.CalendarLink != "" {
		reply = fmt.Sprintf("%s\nAdded to your calendar: %s", reply, out.CalendarLink)
	}
	return reply
}

// friendlyError maps sentinel errors to messages a chat user can act on.
func friendlyError(err error) string {
	switch {
	case errors.Is(err, interpreter.ErrEmptyInput):
		return "I didn't catch that. Tell me about a task, or send /help."
	case errors.Is(err, interpreter.ErrInvalidDeadlineDate):
		return "A deadline needs a date, like: deadline return book 16/9/2025 1800"
	case errors.Is(err, interpreter.ErrInvalidEventDate):
		return "An event needs a start and an end, like: event meeting 17/8/2025 1600 17/8/2025 1900"
	case errors.Is(err, interpreter.ErrInvalidDateRange):
		return "That event ends before it starts. Double-check the dates."
	case errors.Is(err, interpreter.ErrMissingIndex):
		return "Which task? Give me its number, like: mark 2"
	case errors.Is(err, interpreter.ErrInvalidIndex):
		return "That task number doesn't look right. Try: list"
	case errors.Is(err, tasklist.ErrIndexOutOfRange):
		return "There's no task with that number. Try: list"
	case errors.Is(err, tasklist.ErrStorage):
		return "I couldn't save that just now. Please try again."
	default:
		return usecase.ReplyCommandsGuide
	}
}
