package handler

import (
	"strings"

	th "github.com/mymmrac/telego/telegohandler"

	"github.com/mymmrac/telego"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/service"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
)

// handleMessage routes private-chat messages: commands, then free
// text for an in-progress wizard.
func (h *Handler) handleMessage(ctx *th.Context, message telego.Message) error {
	if message.From == nil || message.From.IsBot {
		return nil
	}
	if message.Chat.Type != "private" {
		return nil
	}

	text := message.Text
	switch {
	case text == "/start" || strings.HasPrefix(text, "/start "):
		return h.handleStart(ctx, message)
	case text == "/blacklist":
		return h.handleBlacklistCommand(ctx, message)
	case text != "" && !strings.HasPrefix(text, "/"):
		return h.handleAdminText(ctx, message)
	}
	return nil
}

// handleStart implements the /start command: the admin gets the
// panel, everyone else either redeems a deep-link token or gets the
// welcome text.
func (h *Handler) handleStart(ctx *th.Context, message telego.Message) error {
	chatID := message.Chat.ID
	userID := message.From.ID
	param := strings.TrimSpace(strings.TrimPrefix(message.Text, "/start"))

	if h.isAdmin(userID) {
		h.sendAdminPanel(ctx, chatID)
		return nil
	}

	blocked, err := h.blocker.IsBlocked(userID)
	if err != nil {
		logger.Errorf("block check for %d: %v", userID, err)
		h.sendMessage(ctx, chatID, texts.UserTryLater, nil)
		return nil
	}
	if blocked {
		h.sendMessage(ctx, chatID, texts.UserBlocked, nil)
		return nil
	}

	if param == "" {
		h.sendMessage(ctx, chatID, texts.UserWelcome, nil)
		return nil
	}

	return h.redeemToken(ctx, message, param)
}

// redeemToken turns a pending web submission into an inbox message.
// The token is consumed atomically, so opening the same link twice
// yields the invalid-link reply instead of a duplicate message.
func (h *Handler) redeemToken(ctx *th.Context, message telego.Message, token string) error {
	chatID := message.Chat.ID

	text, ok := h.tokens.Take(token)
	if !ok {
		h.sendMessage(ctx, chatID, texts.UserInvalidLink, nil)
		return nil
	}

	sender := service.Sender{
		ID:        message.From.ID,
		Username:  message.From.Username,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
	}
	if _, err := h.inbox.Receive(sender, text); err != nil {
		// Put the token back so the link stays usable
		h.tokens.Restore(token, text)
		logger.Errorf("storing redeemed message: %v", err)
		h.sendMessage(ctx, chatID, texts.UserTryLater, nil)
		return nil
	}

	h.sendMessage(ctx, chatID, texts.UserMessageSent, nil)
	h.sendMessage(ctx, h.cfg.Bot.AdminID, texts.AdminNewMessage, nil)
	logger.Infof("Message from %d stored via token %s", sender.ID, token)
	return nil
}

// handleBlacklistCommand implements the admin-only /blacklist command
func (h *Handler) handleBlacklistCommand(ctx *th.Context, message telego.Message) error {
	if !h.isAdmin(message.From.ID) {
		logger.Warningf("unauthorized /blacklist from %d", message.From.ID)
		h.sendMessage(ctx, message.Chat.ID, texts.AdminNoAccess, nil)
		return nil
	}

	h.sendMessage(ctx, message.Chat.ID, texts.AdminBlacklistOpen,
		keyboard(row(btn(texts.BtnOpenBlacklist, cbBlacklistPage(0)))))
	return nil
}
