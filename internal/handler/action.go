package handler

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies an admin panel command
type Kind int

const (
	KindUnknown Kind = iota
	KindAdminPanel
	KindDismissPanel
	KindViewMessages
	KindViewSender
	KindReply
	KindBlockMenu
	KindBlockTemp
	KindBlockPerm
	KindDeleteMessage
	KindConfirmDelete
	KindBlacklist
	KindUnblock
	KindCancel
)

// Action is a decoded callback command. Callback data is parsed into
// it exactly once, at the boundary, so the handlers work with typed
// fields instead of re-splitting strings.
type Action struct {
	Kind      Kind
	SenderID  int64
	MessageID int64
	Page      int
	// FromSenderView marks an unblock issued from the message view
	// rather than the blacklist view; it decides which view to
	// re-render afterwards.
	FromSenderView bool
}

// ParseAction decodes callback data into an Action
func ParseAction(data string) (Action, error) {
	switch data {
	case "admin_back_start":
		return Action{Kind: KindAdminPanel}, nil
	case "delete_message":
		return Action{Kind: KindDismissPanel}, nil
	case "admin_view_messages":
		return Action{Kind: KindViewMessages}, nil
	case "admin_blacklist":
		return Action{Kind: KindBlacklist}, nil
	case "cancel_action":
		return Action{Kind: KindCancel}, nil
	}

	switch {
	case strings.HasPrefix(data, "view_sender_"):
		rest := strings.TrimPrefix(data, "view_sender_")
		parts := strings.Split(rest, "_")
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("malformed sender view action: %q", data)
		}
		senderID, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("bad sender id in %q: %w", data, err)
		}
		page, err := strconv.Atoi(parts[1])
		if err != nil || page < 0 {
			return Action{}, fmt.Errorf("bad page in %q", data)
		}
		return Action{Kind: KindViewSender, SenderID: senderID, Page: page}, nil

	case strings.HasPrefix(data, "reply_"):
		id, err := parseID(data, "reply_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindReply, MessageID: id}, nil

	case strings.HasPrefix(data, "block_user_"):
		id, err := parseID(data, "block_user_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindBlockMenu, SenderID: id}, nil

	case strings.HasPrefix(data, "block_temp_"):
		id, err := parseID(data, "block_temp_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindBlockTemp, SenderID: id}, nil

	case strings.HasPrefix(data, "block_perm_"):
		id, err := parseID(data, "block_perm_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindBlockPerm, SenderID: id}, nil

	case strings.HasPrefix(data, "delete_msg_"):
		id, err := parseID(data, "delete_msg_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindDeleteMessage, MessageID: id}, nil

	case strings.HasPrefix(data, "confirm_delete_"):
		id, err := parseID(data, "confirm_delete_")
		if err != nil {
			return Action{}, err
		}
		return Action{Kind: KindConfirmDelete, MessageID: id}, nil

	case strings.HasPrefix(data, "blacklist_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(data, "blacklist_page_"))
		if err != nil || page < 0 {
			return Action{}, fmt.Errorf("bad blacklist page in %q", data)
		}
		return Action{Kind: KindBlacklist, Page: page}, nil

	case strings.HasPrefix(data, "unblock_"):
		rest := strings.TrimPrefix(data, "unblock_")
		fromSender := strings.HasSuffix(rest, "_msg")
		rest = strings.TrimSuffix(rest, "_msg")
		senderID, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("bad sender id in %q: %w", data, err)
		}
		return Action{Kind: KindUnblock, SenderID: senderID, FromSenderView: fromSender}, nil
	}

	return Action{}, fmt.Errorf("unknown action: %q", data)
}

func parseID(data, prefix string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(data, prefix), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id in %q: %w", data, err)
	}
	return id, nil
}

// Callback data builders, the inverse of ParseAction

func cbAdminPanel() string            { return "admin_back_start" }
func cbDismissPanel() string          { return "delete_message" }
func cbViewMessages() string          { return "admin_view_messages" }
func cbCancel() string                { return "cancel_action" }
func cbReply(msgID int64) string      { return fmt.Sprintf("reply_%d", msgID) }
func cbBlockMenu(id int64) string     { return fmt.Sprintf("block_user_%d", id) }
func cbBlockTemp(id int64) string     { return fmt.Sprintf("block_temp_%d", id) }
func cbBlockPerm(id int64) string     { return fmt.Sprintf("block_perm_%d", id) }
func cbDeleteMsg(msgID int64) string  { return fmt.Sprintf("delete_msg_%d", msgID) }
func cbConfirmDel(msgID int64) string { return fmt.Sprintf("confirm_delete_%d", msgID) }

func cbViewSender(senderID int64, page int) string {
	return fmt.Sprintf("view_sender_%d_%d", senderID, page)
}

func cbBlacklistPage(page int) string {
	if page == 0 {
		return "admin_blacklist"
	}
	return fmt.Sprintf("blacklist_page_%d", page)
}

func cbUnblock(senderID int64, fromSenderView bool) string {
	if fromSenderView {
		return fmt.Sprintf("unblock_%d_msg", senderID)
	}
	return fmt.Sprintf("unblock_%d", senderID)
}
