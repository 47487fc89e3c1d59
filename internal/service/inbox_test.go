package service

import (
	"errors"
	"testing"
	"time"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"
)

type mockMessageStore struct {
	messages  []models.Message
	nextID    int64
	insertErr error
}

func (m *mockMessageStore) Insert(msg *models.Message) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.nextID++
	msg.ID = m.nextID
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockMessageStore) SendersSummary() ([]models.SenderSummary, error) {
	return nil, nil
}

func (m *mockMessageStore) ListBySender(senderID int64) ([]models.Message, error) {
	var result []models.Message
	for _, msg := range m.messages {
		if msg.SenderID == senderID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *mockMessageStore) GetByID(id int64) (*models.Message, error) {
	for _, msg := range m.messages {
		if msg.ID == id {
			found := msg
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockMessageStore) MarkAnswered(id int64) error {
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].Answered = true
		}
	}
	return nil
}

func (m *mockMessageStore) DeleteByID(id int64) error {
	for i, msg := range m.messages {
		if msg.ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockMessageStore) CountUnread() (int64, error) {
	var count int64
	for _, msg := range m.messages {
		if !msg.Answered {
			count++
		}
	}
	return count, nil
}

func TestReceiveStoresMessage(t *testing.T) {
	store := &mockMessageStore{}
	inbox := NewInbox(store)
	now := time.UnixMilli(1700000000000)
	inbox.now = func() time.Time { return now }

	sender := Sender{ID: 100, Username: "alice", FirstName: "Alice"}
	msg, err := inbox.Receive(sender, "hello there")
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}

	if msg.ID == 0 {
		t.Error("stored message should have an id")
	}
	if msg.SenderID != 100 {
		t.Errorf("sender id = %d, want 100", msg.SenderID)
	}
	if msg.Text != "hello there" {
		t.Errorf("text = %q, want %q", msg.Text, "hello there")
	}
	if msg.CreatedAt != now.UnixMilli() {
		t.Errorf("created_at = %d, want %d", msg.CreatedAt, now.UnixMilli())
	}
	if msg.Answered {
		t.Error("new message must start unanswered")
	}
	if msg.Username == nil || *msg.Username != "alice" {
		t.Errorf("username = %v, want alice", msg.Username)
	}
	if msg.LastName != nil {
		t.Error("empty last name must be stored as nil")
	}
}

func TestReceiveStoreFailure(t *testing.T) {
	store := &mockMessageStore{insertErr: errors.New("disk full")}
	inbox := NewInbox(store)

	if _, err := inbox.Receive(Sender{ID: 1}, "text"); err == nil {
		t.Error("store failure must surface as an error")
	}
}

func TestMessageVanished(t *testing.T) {
	inbox := NewInbox(&mockMessageStore{})

	msg, err := inbox.Message(12345)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if msg != nil {
		t.Error("missing message should be nil, not an error")
	}
}

func TestMarkAnsweredAndUnreadCount(t *testing.T) {
	store := &mockMessageStore{}
	inbox := NewInbox(store)

	first, _ := inbox.Receive(Sender{ID: 1}, "one")
	inbox.Receive(Sender{ID: 1}, "two")

	count, err := inbox.UnreadCount()
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 2 {
		t.Errorf("unread = %d, want 2", count)
	}

	if err := inbox.MarkAnswered(first.ID); err != nil {
		t.Fatalf("MarkAnswered: %v", err)
	}

	count, _ = inbox.UnreadCount()
	if count != 1 {
		t.Errorf("unread after answering = %d, want 1", count)
	}
}

func TestDeleteRemovesMessage(t *testing.T) {
	store := &mockMessageStore{}
	inbox := NewInbox(store)

	msg, _ := inbox.Receive(Sender{ID: 1}, "bye")
	if err := inbox.Delete(msg.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := inbox.Message(msg.ID)
	if err != nil {
		t.Fatalf("Message: %v", err)
	}
	if got != nil {
		t.Error("deleted message should be gone")
	}
}
