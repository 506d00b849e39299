package telegram

import (
	"context"

	"shadowbuddy/internal/interpreter"
	"shadowbuddy/internal/tasklist"
	pkgLog "shadowbuddy/pkg/log"
)

// MessageSender sends replies back to a Telegram chat. Satisfied by
// *telegram.Bot from pkg/telegram.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Handler struct {
	l      pkgLog.Logger
	parser interpreter.Parser
	uc     tasklist.UseCase
	bot    MessageSender
}

func NewHandler(l pkgLog.Logger, parser interpreter.Parser, uc tasklist.UseCase, bot MessageSender) *Handler {
	return &Handler{
		l:      l,
		parser: parser,
		uc:     uc,
		bot:    bot,
	}
}
