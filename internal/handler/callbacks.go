package handler

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/session"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
)

// handleCallback decodes callback data once and dispatches on the
// typed command. Every branch edits the originating panel message in
// place and acknowledges the query.
func (h *Handler) handleCallback(ctx *th.Context, query telego.CallbackQuery) error {
	if !h.isAdmin(query.From.ID) {
		logger.Warningf("unauthorized callback from %d: %s", query.From.ID, query.Data)
		return h.answerCallback(ctx, query.ID, texts.AdminNoAccessFunction)
	}

	panelMsg, ok := query.Message.(*telego.Message)
	if !ok {
		return h.answerCallback(ctx, query.ID, "")
	}
	chatID := panelMsg.Chat.ID
	messageID := panelMsg.MessageID
	adminID := query.From.ID

	action, err := ParseAction(query.Data)
	if err != nil {
		logger.Warningf("Invalid callback data: %v", err)
		return h.answerCallback(ctx, query.ID, "")
	}

	switch action.Kind {
	case KindAdminPanel:
		h.renderAdminPanel(ctx, chatID, messageID)

	case KindDismissPanel:
		_ = h.bot.DeleteMessage(ctx.Context(), &telego.DeleteMessageParams{
			ChatID:    telego.ChatID{ID: chatID},
			MessageID: messageID,
		})

	case KindViewMessages:
		h.renderSenderList(ctx, chatID, messageID)

	case KindViewSender:
		return h.renderSenderView(ctx, query, action.SenderID, action.Page)

	case KindReply:
		h.sessions.Set(adminID, session.Session{Action: session.ActionReply, TargetID: action.MessageID})
		h.editMessage(ctx, chatID, messageID, texts.AdminEnterReply,
			keyboard(row(btn(texts.BtnCancel, cbCancel()))))

	case KindBlockMenu:
		h.editMessage(ctx, chatID, messageID, texts.AdminSelectBlockType,
			keyboard(
				row(btn(texts.BtnBlockTemp, cbBlockTemp(action.SenderID))),
				row(btn(texts.BtnBlockPerm, cbBlockPerm(action.SenderID))),
				row(btn(texts.BtnBack, cbViewMessages())),
			))

	case KindBlockTemp:
		h.sessions.Set(adminID, session.Session{Action: session.ActionBlockTemporary, TargetID: action.SenderID})
		h.editMessage(ctx, chatID, messageID, texts.AdminEnterBlockHours,
			keyboard(row(btn(texts.BtnCancel, cbCancel()))))

	case KindBlockPerm:
		if err := h.blocker.BlockPermanent(action.SenderID); err != nil {
			logger.Errorf("permanent block for %d: %v", action.SenderID, err)
			return h.answerCallback(ctx, query.ID, texts.AdminActionFailed)
		}
		h.editMessage(ctx, chatID, messageID, texts.AdminBlockedPerm,
			keyboard(row(btn(texts.BtnBackToMessages, cbViewMessages()))))
		return h.answerCallback(ctx, query.ID, texts.AdminBlockedPerm)

	case KindDeleteMessage:
		h.editMessage(ctx, chatID, messageID, texts.AdminConfirmDelete,
			keyboard(
				row(btn(texts.BtnConfirmDelete, cbConfirmDel(action.MessageID))),
				row(btn(texts.BtnCancel, cbViewMessages())),
			))

	case KindConfirmDelete:
		if err := h.inbox.Delete(action.MessageID); err != nil {
			logger.Errorf("deleting message %d: %v", action.MessageID, err)
			return h.answerCallback(ctx, query.ID, texts.AdminActionFailed)
		}
		h.editMessage(ctx, chatID, messageID, texts.AdminMessageDeleted,
			keyboard(row(btn(texts.BtnBackToMessages, cbViewMessages()))))
		return h.answerCallback(ctx, query.ID, texts.AdminMessageDeleted)

	case KindBlacklist:
		h.renderBlacklist(ctx, chatID, messageID, action.Page)

	case KindUnblock:
		if err := h.blocker.Unblock(action.SenderID); err != nil {
			logger.Errorf("unblocking %d: %v", action.SenderID, err)
			return h.answerCallback(ctx, query.ID, texts.AdminActionFailed)
		}
		if err := h.answerCallback(ctx, query.ID, texts.AdminUnblocked); err != nil {
			return err
		}
		// Re-render the view the unblock came from
		if action.FromSenderView {
			return h.renderSenderView(ctx, query, action.SenderID, 0)
		}
		h.renderBlacklist(ctx, chatID, messageID, 0)
		return nil

	case KindCancel:
		h.sessions.Clear(adminID)
		if err := h.answerCallback(ctx, query.ID, texts.AdminActionCancelled); err != nil {
			return err
		}
		h.renderSenderList(ctx, chatID, messageID)
		return nil
	}

	return h.answerCallback(ctx, query.ID, "")
}
