package handler

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		data string
		want Action
	}{
		{"admin_back_start", Action{Kind: KindAdminPanel}},
		{"delete_message", Action{Kind: KindDismissPanel}},
		{"admin_view_messages", Action{Kind: KindViewMessages}},
		{"admin_blacklist", Action{Kind: KindBlacklist}},
		{"cancel_action", Action{Kind: KindCancel}},
		{"view_sender_123_0", Action{Kind: KindViewSender, SenderID: 123, Page: 0}},
		{"view_sender_123_7", Action{Kind: KindViewSender, SenderID: 123, Page: 7}},
		{"reply_42", Action{Kind: KindReply, MessageID: 42}},
		{"block_user_99", Action{Kind: KindBlockMenu, SenderID: 99}},
		{"block_temp_99", Action{Kind: KindBlockTemp, SenderID: 99}},
		{"block_perm_99", Action{Kind: KindBlockPerm, SenderID: 99}},
		{"delete_msg_42", Action{Kind: KindDeleteMessage, MessageID: 42}},
		{"confirm_delete_42", Action{Kind: KindConfirmDelete, MessageID: 42}},
		{"blacklist_page_3", Action{Kind: KindBlacklist, Page: 3}},
		{"unblock_99", Action{Kind: KindUnblock, SenderID: 99}},
		{"unblock_99_msg", Action{Kind: KindUnblock, SenderID: 99, FromSenderView: true}},
	}

	for _, tt := range tests {
		got, err := ParseAction(tt.data)
		if err != nil {
			t.Errorf("ParseAction(%q): unexpected error %v", tt.data, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tt.data, got, tt.want)
		}
	}
}

func TestParseActionRejectsMalformedData(t *testing.T) {
	malformed := []string{
		"",
		"bogus",
		"view_sender_",
		"view_sender_abc_0",
		"view_sender_1_abc",
		"view_sender_1_-1",
		"reply_",
		"reply_abc",
		"block_user_x",
		"blacklist_page_-2",
		"unblock_abc",
		"confirm_delete_",
	}

	for _, data := range malformed {
		if _, err := ParseAction(data); err == nil {
			t.Errorf("ParseAction(%q): expected an error", data)
		}
	}
}

func TestCallbackBuildersRoundtrip(t *testing.T) {
	cases := []struct {
		data string
		want Action
	}{
		{cbAdminPanel(), Action{Kind: KindAdminPanel}},
		{cbDismissPanel(), Action{Kind: KindDismissPanel}},
		{cbViewMessages(), Action{Kind: KindViewMessages}},
		{cbCancel(), Action{Kind: KindCancel}},
		{cbViewSender(5, 2), Action{Kind: KindViewSender, SenderID: 5, Page: 2}},
		{cbReply(8), Action{Kind: KindReply, MessageID: 8}},
		{cbBlockMenu(5), Action{Kind: KindBlockMenu, SenderID: 5}},
		{cbBlockTemp(5), Action{Kind: KindBlockTemp, SenderID: 5}},
		{cbBlockPerm(5), Action{Kind: KindBlockPerm, SenderID: 5}},
		{cbDeleteMsg(8), Action{Kind: KindDeleteMessage, MessageID: 8}},
		{cbConfirmDel(8), Action{Kind: KindConfirmDelete, MessageID: 8}},
		{cbBlacklistPage(0), Action{Kind: KindBlacklist, Page: 0}},
		{cbBlacklistPage(4), Action{Kind: KindBlacklist, Page: 4}},
		{cbUnblock(5, false), Action{Kind: KindUnblock, SenderID: 5}},
		{cbUnblock(5, true), Action{Kind: KindUnblock, SenderID: 5, FromSenderView: true}},
	}

	for _, tt := range cases {
		got, err := ParseAction(tt.data)
		if err != nil {
			t.Errorf("ParseAction(%q): unexpected error %v", tt.data, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", tt.data, got, tt.want)
		}
	}
}
