package models

import "fmt"

// Message is a single anonymous submission relayed into the inbox.
// created_at is stored as epoch milliseconds to match the wire format
// used in deep links and block expiry timestamps.
type Message struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	SenderID  int64   `gorm:"column:sender_id;index;not null"`
	Username  *string `gorm:"column:username"`
	FirstName *string `gorm:"column:first_name"`
	LastName  *string `gorm:"column:last_name"`
	Text      string  `gorm:"column:text;type:text;not null"`
	CreatedAt int64   `gorm:"column:created_at;not null"`
	Answered  bool    `gorm:"column:answered;default:false"`
}

// TableName overrides the default GORM table name
func (Message) TableName() string {
	return "messages"
}

// DisplayName returns the sender's display name: first name, then
// username, then a bare numeric ID.
func (m *Message) DisplayName() string {
	return displayName(m.FirstName, m.Username, m.SenderID)
}

// SenderSummary is one row of the per-sender inbox overview.
// It is a query result, not a table.
type SenderSummary struct {
	SenderID  int64
	Username  *string
	FirstName *string
	LastName  *string
	Total     int64
	Unread    int64
}

// DisplayName returns the sender's display name with the same fallback
// chain as Message.DisplayName.
func (s *SenderSummary) DisplayName() string {
	return displayName(s.FirstName, s.Username, s.SenderID)
}

func displayName(firstName, username *string, senderID int64) string {
	if firstName != nil && *firstName != "" {
		return *firstName
	}
	if username != nil && *username != "" {
		return *username
	}
	return fmt.Sprintf("ID: %d", senderID)
}
