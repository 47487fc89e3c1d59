package handler

import (
	"fmt"
	"html"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/texts"
)

func formatDate(epochMs int64) string {
	return time.UnixMilli(epochMs).Format("02.01.2006 15:04")
}

func (h *Handler) adminPanelKeyboard() *telego.InlineKeyboardMarkup {
	return keyboard(
		row(btn(texts.BtnViewMessages, cbViewMessages())),
		row(btn(texts.BtnBlacklist, cbBlacklistPage(0))),
		row(btn(texts.BtnDismissPanel, cbDismissPanel())),
	)
}

// sendAdminPanel posts a fresh admin panel message
func (h *Handler) sendAdminPanel(ctx *th.Context, chatID int64) {
	h.sendMessage(ctx, chatID, texts.AdminPanel, h.adminPanelKeyboard())
}

// renderAdminPanel redraws the panel over an existing message
func (h *Handler) renderAdminPanel(ctx *th.Context, chatID int64, messageID int) {
	h.editMessage(ctx, chatID, messageID, texts.AdminPanel, h.adminPanelKeyboard())
}

// renderSenderList shows one button per sender with unread and
// blocked badges, most recently active sender first.
func (h *Handler) renderSenderList(ctx *th.Context, chatID int64, messageID int) {
	senders, err := h.inbox.Senders()
	if err != nil {
		logger.Errorf("listing senders: %v", err)
		h.editMessage(ctx, chatID, messageID, texts.AdminActionFailed,
			keyboard(row(btn(texts.BtnBack, cbAdminPanel()))))
		return
	}

	if len(senders) == 0 {
		h.editMessage(ctx, chatID, messageID, texts.AdminNoMessages,
			keyboard(row(btn(texts.BtnBack, cbAdminPanel()))))
		return
	}

	var rows [][]telego.InlineKeyboardButton
	for _, sender := range senders {
		label := sender.DisplayName()
		if sender.Unread > 0 {
			label += fmt.Sprintf(texts.UnreadBadge, sender.Unread)
		}
		// This read also garbage-collects an expired temporary block
		blocked, err := h.blocker.IsBlocked(sender.SenderID)
		if err != nil {
			logger.Warningf("block check for %d: %v", sender.SenderID, err)
		}
		if blocked {
			label += texts.BlockedBadge
		}
		rows = append(rows, row(btn(label, cbViewSender(sender.SenderID, 0))))
	}
	rows = append(rows, row(btn(texts.BtnBack, cbAdminPanel())))

	h.editMessage(ctx, chatID, messageID, texts.AdminSelectSender, keyboard(rows...))
}

// renderSenderView shows one message of a sender at the given page.
// Pages index the sender's messages newest-first and are recomputed
// on every render, so a deletion in between shifts later pages; the
// index is clamped instead of failing.
func (h *Handler) renderSenderView(ctx *th.Context, query telego.CallbackQuery, senderID int64, page int) error {
	panelMsg, ok := query.Message.(*telego.Message)
	if !ok {
		return h.answerCallback(ctx, query.ID, "")
	}
	chatID := panelMsg.Chat.ID
	messageID := panelMsg.MessageID

	msgs, err := h.inbox.MessagesBySender(senderID)
	if err != nil {
		logger.Errorf("listing messages for %d: %v", senderID, err)
		return h.answerCallback(ctx, query.ID, texts.AdminActionFailed)
	}
	if len(msgs) == 0 {
		return h.answerCallback(ctx, query.ID, texts.AdminNoSenderMessages)
	}

	if page >= len(msgs) {
		page = len(msgs) - 1
	}
	msg := msgs[page]

	status := texts.StatusNew
	if msg.Answered {
		status = texts.StatusAnswer
	}

	blocked, err := h.blocker.IsBlocked(senderID)
	if err != nil {
		logger.Warningf("block check for %d: %v", senderID, err)
	}

	blockStatus := ""
	if blocked {
		entry, err := h.blocker.Entry(senderID)
		if err != nil {
			logger.Warningf("blacklist entry for %d: %v", senderID, err)
		}
		if entry != nil {
			if entry.IsPermanent {
				blockStatus = texts.BlockedPerm
			} else {
				blockStatus = fmt.Sprintf(texts.BlockedTemp, h.blocker.HoursLeft(entry))
			}
		}
	}

	text := blockStatus + fmt.Sprintf(texts.MessageHeader,
		html.EscapeString(msg.DisplayName()),
		status,
		formatDate(msg.CreatedAt),
		page+1,
		len(msgs),
		html.EscapeString(msg.Text))

	var rows [][]telego.InlineKeyboardButton

	var nav []telego.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, btn(texts.BtnPrev, cbViewSender(senderID, page-1)))
	}
	if page < len(msgs)-1 {
		nav = append(nav, btn(texts.BtnNext, cbViewSender(senderID, page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	if blocked {
		rows = append(rows, row(
			btn(texts.BtnReply, cbReply(msg.ID)),
			btn(texts.BtnUnblock, cbUnblock(senderID, true)),
		))
	} else {
		rows = append(rows, row(
			btn(texts.BtnReply, cbReply(msg.ID)),
			btn(texts.BtnBlock, cbBlockMenu(senderID)),
		))
	}

	rows = append(rows, row(btn(texts.BtnDeleteMsg, cbDeleteMsg(msg.ID))))
	rows = append(rows, row(btn(texts.BtnBackToSenders, cbViewMessages())))

	h.editMessage(ctx, chatID, messageID, text, keyboard(rows...))
	_ = h.answerCallback(ctx, query.ID, "")
	return nil
}

// renderBlacklist shows one blacklist entry per page, newest block
// first, with its computed status.
func (h *Handler) renderBlacklist(ctx *th.Context, chatID int64, messageID int, page int) {
	entries, err := h.blocker.Entries()
	if err != nil {
		logger.Errorf("listing blacklist: %v", err)
		h.editMessage(ctx, chatID, messageID, texts.AdminActionFailed,
			keyboard(row(btn(texts.BtnBack, cbAdminPanel()))))
		return
	}

	if len(entries) == 0 {
		h.editMessage(ctx, chatID, messageID, texts.AdminBlacklistEmpty,
			keyboard(row(btn(texts.BtnBack, cbAdminPanel()))))
		return
	}

	if page >= len(entries) {
		page = len(entries) - 1
	}
	entry := entries[page]

	var status string
	switch {
	case entry.IsPermanent:
		status = texts.BlacklistStatusPerm
	default:
		if hours := h.blocker.HoursLeft(&entry); hours > 0 {
			status = fmt.Sprintf(texts.BlacklistStatusTemp, hours)
		} else {
			status = texts.BlacklistStatusExpired
		}
	}

	text := fmt.Sprintf(texts.BlacklistHeader,
		entry.SenderID, status, formatDate(entry.BlockedAt), page+1, len(entries))

	var rows [][]telego.InlineKeyboardButton

	var nav []telego.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, btn(texts.BtnPrev, cbBlacklistPage(page-1)))
	}
	if page < len(entries)-1 {
		nav = append(nav, btn(texts.BtnNext, cbBlacklistPage(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	rows = append(rows, row(btn(texts.BtnUnblock, cbUnblock(entry.SenderID, false))))
	rows = append(rows, row(btn(texts.BtnBack, cbAdminPanel())))

	h.editMessage(ctx, chatID, messageID, text, keyboard(rows...))
}
