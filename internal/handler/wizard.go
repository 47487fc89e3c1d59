package handler

import (
	"errors"
	"fmt"
	"html"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/service"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/session"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
)

// handleAdminText feeds free text into the admin's pending wizard
// step, if any. Non-admin text and text outside a wizard is ignored.
func (h *Handler) handleAdminText(ctx *th.Context, message telego.Message) error {
	if !h.isAdmin(message.From.ID) {
		return nil
	}

	sess, ok := h.sessions.Get(message.From.ID)
	if !ok {
		return nil
	}

	switch sess.Action {
	case session.ActionReply:
		return h.finishReply(ctx, message, sess.TargetID)
	case session.ActionBlockTemporary:
		return h.finishTempBlock(ctx, message, sess.TargetID)
	}
	return nil
}

// finishReply delivers the admin's text to the message's sender and
// marks the message answered. The session is consumed up front: if
// the message was deleted while the wizard was open, the stale text
// is dropped without an error.
func (h *Handler) finishReply(ctx *th.Context, message telego.Message, messageID int64) error {
	adminID := message.From.ID
	h.sessions.Clear(adminID)

	msg, err := h.inbox.Message(messageID)
	if err != nil {
		logger.Errorf("loading message %d for reply: %v", messageID, err)
		h.sendMessage(ctx, message.Chat.ID, texts.AdminActionFailed, nil)
		return nil
	}
	if msg == nil {
		return nil
	}

	h.sendMessage(ctx, msg.SenderID,
		fmt.Sprintf(texts.ReplyFromAdmin, html.EscapeString(message.Text)), nil)

	if err := h.inbox.MarkAnswered(messageID); err != nil {
		logger.Warningf("marking message %d answered: %v", messageID, err)
	}

	h.sendMessage(ctx, message.Chat.ID, texts.AdminReplySent,
		keyboard(row(btn(texts.BtnBackToMessages, cbViewMessages()))))
	logger.Infof("Reply to message %d delivered to %d", messageID, msg.SenderID)
	return nil
}

// finishTempBlock parses the block duration and applies it. Invalid
// input re-prompts and keeps the session open, so the admin can just
// type again.
func (h *Handler) finishTempBlock(ctx *th.Context, message telego.Message, senderID int64) error {
	hours, err := service.ParseBlockHours(message.Text)
	if errors.Is(err, service.ErrInvalidHours) {
		h.sendMessage(ctx, message.Chat.ID, texts.AdminInvalidHours, nil)
		return nil
	}

	if err := h.blocker.BlockTemporary(senderID, hours); err != nil {
		logger.Errorf("temporary block for %d: %v", senderID, err)
		h.sendMessage(ctx, message.Chat.ID, texts.AdminActionFailed, nil)
		return nil
	}

	// The session is consumed only once the block is stored, so the
	// admin can retype the duration after a failure
	h.sessions.Clear(message.From.ID)

	h.sendMessage(ctx, message.Chat.ID,
		fmt.Sprintf(texts.AdminBlockedTemp, hours),
		keyboard(row(btn(texts.BtnBackToMessages, cbViewMessages()))))
	logger.Infof("Sender %d blocked for %d hours", senderID, hours)
	return nil
}
