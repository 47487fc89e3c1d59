package service

import (
	"errors"
	"testing"
	"time"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"
)

type mockBlacklistStore struct {
	entries map[int64]models.BlacklistEntry
	getErr  error
}

func newMockBlacklistStore() *mockBlacklistStore {
	return &mockBlacklistStore{entries: make(map[int64]models.BlacklistEntry)}
}

func (m *mockBlacklistStore) Get(senderID int64) (*models.BlacklistEntry, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	entry, ok := m.entries[senderID]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (m *mockBlacklistStore) Upsert(entry *models.BlacklistEntry) error {
	m.entries[entry.SenderID] = *entry
	return nil
}

func (m *mockBlacklistStore) Delete(senderID int64) error {
	delete(m.entries, senderID)
	return nil
}

func (m *mockBlacklistStore) ListAll() ([]models.BlacklistEntry, error) {
	var result []models.BlacklistEntry
	for _, e := range m.entries {
		result = append(result, e)
	}
	return result, nil
}

func newTestBlocker(store BlacklistStore, now time.Time) *Blocker {
	b := NewBlocker(store)
	b.now = func() time.Time { return now }
	return b
}

func TestIsBlockedAbsentSender(t *testing.T) {
	b := newTestBlocker(newMockBlacklistStore(), time.Now())

	blocked, err := b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked {
		t.Error("absent sender must not be blocked")
	}
}

func TestIsBlockedPermanent(t *testing.T) {
	store := newMockBlacklistStore()
	b := newTestBlocker(store, time.Now())

	if err := b.BlockPermanent(1); err != nil {
		t.Fatalf("BlockPermanent: %v", err)
	}

	blocked, err := b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Error("permanently blocked sender must be blocked")
	}
}

func TestIsBlockedActiveTemporary(t *testing.T) {
	store := newMockBlacklistStore()
	now := time.UnixMilli(1700000000000)
	b := newTestBlocker(store, now)

	if err := b.BlockTemporary(1, 5); err != nil {
		t.Fatalf("BlockTemporary: %v", err)
	}

	blocked, err := b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !blocked {
		t.Error("temporary block in the future must be active")
	}
}

func TestIsBlockedExpiredTemporaryIsDeleted(t *testing.T) {
	store := newMockBlacklistStore()
	now := time.UnixMilli(1700000000000)
	b := newTestBlocker(store, now)

	if err := b.BlockTemporary(1, 2); err != nil {
		t.Fatalf("BlockTemporary: %v", err)
	}

	// Move past the expiry
	b.now = func() time.Time { return now.Add(3 * time.Hour) }

	blocked, err := b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked {
		t.Error("expired temporary block must not be active")
	}
	if _, ok := store.entries[1]; ok {
		t.Error("expired entry must be removed from the store")
	}

	// Second check finds nothing and stays unblocked
	blocked, err = b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error on repeat check: %v", err)
	}
	if blocked {
		t.Error("repeat check after expiry must stay unblocked")
	}
}

func TestIsBlockedStoreError(t *testing.T) {
	store := newMockBlacklistStore()
	store.getErr = errors.New("connection lost")
	b := newTestBlocker(store, time.Now())

	if _, err := b.IsBlocked(1); err == nil {
		t.Error("store failure must surface as an error")
	}
}

func TestBlockReplacesExistingEntry(t *testing.T) {
	store := newMockBlacklistStore()
	now := time.UnixMilli(1700000000000)
	b := newTestBlocker(store, now)

	if err := b.BlockTemporary(1, 2); err != nil {
		t.Fatalf("BlockTemporary: %v", err)
	}
	if err := b.BlockPermanent(1); err != nil {
		t.Fatalf("BlockPermanent: %v", err)
	}

	entry := store.entries[1]
	if !entry.IsPermanent {
		t.Error("permanent block must replace the temporary entry")
	}

	// And back again
	if err := b.BlockTemporary(1, 4); err != nil {
		t.Fatalf("BlockTemporary: %v", err)
	}
	entry = store.entries[1]
	if entry.IsPermanent {
		t.Error("temporary block must replace the permanent entry")
	}
	wantUntil := now.UnixMilli() + 4*int64(time.Hour/time.Millisecond)
	if entry.BlockedUntil == nil || *entry.BlockedUntil != wantUntil {
		t.Errorf("got blocked_until %v, want %d", entry.BlockedUntil, wantUntil)
	}
}

func TestUnblock(t *testing.T) {
	store := newMockBlacklistStore()
	b := newTestBlocker(store, time.Now())

	if err := b.BlockPermanent(1); err != nil {
		t.Fatalf("BlockPermanent: %v", err)
	}
	if err := b.Unblock(1); err != nil {
		t.Fatalf("Unblock: %v", err)
	}

	blocked, err := b.IsBlocked(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocked {
		t.Error("unblocked sender must not be blocked")
	}
}

func TestHoursLeft(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	b := newTestBlocker(newMockBlacklistStore(), now)

	until := now.Add(90 * time.Minute).UnixMilli()
	entry := &models.BlacklistEntry{SenderID: 1, BlockedUntil: &until}
	if got := b.HoursLeft(entry); got != 2 {
		t.Errorf("90 minutes left should round up to 2 hours, got %d", got)
	}

	past := now.Add(-time.Minute).UnixMilli()
	entry.BlockedUntil = &past
	if got := b.HoursLeft(entry); got != 0 {
		t.Errorf("expired entry should have 0 hours left, got %d", got)
	}

	entry.BlockedUntil = nil
	if got := b.HoursLeft(entry); got != 0 {
		t.Errorf("permanent entry should have 0 hours left, got %d", got)
	}
}

func TestParseBlockHours(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"24", 24, false},
		{" 3 ", 3, false},
		{"1", 1, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"2.5", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBlockHours(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidHours) {
				t.Errorf("ParseBlockHours(%q): want ErrInvalidHours, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBlockHours(%q): unexpected error %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlockHours(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
