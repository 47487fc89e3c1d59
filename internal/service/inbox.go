package service

import (
	"fmt"
	"time"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"
)

// MessageStore is the persistence surface the inbox needs
type MessageStore interface {
	Insert(msg *models.Message) error
	SendersSummary() ([]models.SenderSummary, error)
	ListBySender(senderID int64) ([]models.Message, error)
	GetByID(id int64) (*models.Message, error)
	MarkAnswered(id int64) error
	DeleteByID(id int64) error
	CountUnread() (int64, error)
}

// Sender carries the Telegram identity captured at redemption time.
// Empty optional fields are stored as NULL.
type Sender struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// Inbox manages the admin's message inbox
type Inbox struct {
	store MessageStore
	now   func() time.Time
}

// NewInbox creates an inbox over the given store
func NewInbox(store MessageStore) *Inbox {
	return &Inbox{store: store, now: time.Now}
}

// Receive records a redeemed submission as an inbox message
func (i *Inbox) Receive(sender Sender, text string) (*models.Message, error) {
	msg := &models.Message{
		SenderID:  sender.ID,
		Username:  optional(sender.Username),
		FirstName: optional(sender.FirstName),
		LastName:  optional(sender.LastName),
		Text:      text,
		CreatedAt: i.now().UnixMilli(),
	}
	if err := i.store.Insert(msg); err != nil {
		return nil, fmt.Errorf("storing message from %d: %w", sender.ID, err)
	}
	return msg, nil
}

// Senders returns the per-sender overview, most recent sender first.
// For every row unread <= total holds.
func (i *Inbox) Senders() ([]models.SenderSummary, error) {
	return i.store.SendersSummary()
}

// MessagesBySender returns all messages from a sender, newest first.
// Views page through this slice by position; the slice is recomputed
// on every view, so inserts and deletes shift later pages.
func (i *Inbox) MessagesBySender(senderID int64) ([]models.Message, error) {
	return i.store.ListBySender(senderID)
}

// Message returns a message by id, nil if it no longer exists
func (i *Inbox) Message(id int64) (*models.Message, error) {
	return i.store.GetByID(id)
}

// MarkAnswered records that the admin replied to the message
func (i *Inbox) MarkAnswered(id int64) error {
	return i.store.MarkAnswered(id)
}

// Delete removes a message from the inbox
func (i *Inbox) Delete(id int64) error {
	return i.store.DeleteByID(id)
}

// UnreadCount returns the number of unanswered messages
func (i *Inbox) UnreadCount() (int64, error) {
	return i.store.CountUnread()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
