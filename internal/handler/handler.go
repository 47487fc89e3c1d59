// Package handler routes Telegram updates: the /start redemption
// flow, the admin panel callbacks and the reply/block wizards.
package handler

import (
	"context"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/config"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/service"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/session"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/tokens"
)

// BotAPI is the part of the Telegram client the handlers use.
// *telego.Bot satisfies it.
type BotAPI interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
	EditMessageText(ctx context.Context, params *telego.EditMessageTextParams) (*telego.Message, error)
	DeleteMessage(ctx context.Context, params *telego.DeleteMessageParams) error
	AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error
}

// Handler carries all dependencies the update handlers need. It is
// created once at startup; no package-level mutable state.
type Handler struct {
	bot      BotAPI
	cfg      *config.Config
	inbox    *service.Inbox
	blocker  *service.Blocker
	tokens   *tokens.Store
	sessions *session.Store
}

// New creates a Handler
func New(bot BotAPI, cfg *config.Config, inbox *service.Inbox, blocker *service.Blocker, tokenStore *tokens.Store, sessions *session.Store) *Handler {
	return &Handler{
		bot:      bot,
		cfg:      cfg,
		inbox:    inbox,
		blocker:  blocker,
		tokens:   tokenStore,
		sessions: sessions,
	}
}

// Register attaches the handlers to the bot handler
func (h *Handler) Register(bh *th.BotHandler) {
	bh.HandleMessage(h.handleMessage)

	bh.HandleCallbackQuery(h.handleCallback)
}

// isAdmin is the single authorization gate: every mutating admin
// operation checks here before touching any store.
func (h *Handler) isAdmin(userID int64) bool {
	return userID == h.cfg.Bot.AdminID
}

// sendMessage sends a plain HTML message, logging failures
func (h *Handler) sendMessage(ctx *th.Context, chatID int64, text string, keyboard *telego.InlineKeyboardMarkup) {
	_, err := h.bot.SendMessage(ctx.Context(), &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: chatID},
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Warningf("Error sending message to %d: %v", chatID, err)
	}
}

// editMessage edits a message in place, logging failures
func (h *Handler) editMessage(ctx *th.Context, chatID int64, messageID int, text string, keyboard *telego.InlineKeyboardMarkup) {
	_, err := h.bot.EditMessageText(ctx.Context(), &telego.EditMessageTextParams{
		ChatID:      telego.ChatID{ID: chatID},
		MessageID:   messageID,
		Text:        text,
		ParseMode:   "HTML",
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Warningf("Error editing message %d in chat %d: %v", messageID, chatID, err)
	}
}

// answerCallback acknowledges a callback query, logging failures
func (h *Handler) answerCallback(ctx *th.Context, queryID, text string) error {
	err := h.bot.AnswerCallbackQuery(ctx.Context(), &telego.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
		Text:            text,
	})
	if err != nil {
		logger.Warningf("Error answering callback query: %v", err)
	}
	return err
}

func keyboard(rows ...[]telego.InlineKeyboardButton) *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func row(buttons ...telego.InlineKeyboardButton) []telego.InlineKeyboardButton {
	return buttons
}

func btn(label, data string) telego.InlineKeyboardButton {
	return telego.InlineKeyboardButton{Text: label, CallbackData: data}
}
