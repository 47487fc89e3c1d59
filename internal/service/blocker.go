package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/logger"
	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"
)

// ErrInvalidHours is returned for a block duration that is not a
// positive integer. The wizard re-prompts without losing its state.
var ErrInvalidHours = errors.New("block duration must be a positive number of hours")

// BlacklistStore is the persistence surface the block policy needs
type BlacklistStore interface {
	Get(senderID int64) (*models.BlacklistEntry, error)
	Upsert(entry *models.BlacklistEntry) error
	Delete(senderID int64) error
	ListAll() ([]models.BlacklistEntry, error)
}

// Blocker decides whether a sender is blocked and manages the
// blacklist. Expired temporary blocks are removed lazily: whichever
// IsBlocked call first observes the expiry deletes the entry, so no
// background sweeper is needed.
type Blocker struct {
	store BlacklistStore
	now   func() time.Time
}

// NewBlocker creates a block policy over the given store
func NewBlocker(store BlacklistStore) *Blocker {
	return &Blocker{store: store, now: time.Now}
}

// IsBlocked reports whether the sender is blocked right now.
// An expired temporary entry is deleted as a side effect.
func (b *Blocker) IsBlocked(senderID int64) (bool, error) {
	entry, err := b.store.Get(senderID)
	if err != nil {
		return false, fmt.Errorf("blacklist lookup for %d: %w", senderID, err)
	}
	if entry == nil {
		return false, nil
	}

	if entry.IsPermanent {
		return true, nil
	}

	nowMs := b.now().UnixMilli()
	if entry.BlockedUntil != nil && *entry.BlockedUntil > nowMs {
		return true, nil
	}

	// Temporary block has run out: drop the entry
	if err := b.store.Delete(senderID); err != nil {
		logger.Warningf("removing expired blacklist entry for %d: %v", senderID, err)
	}
	return false, nil
}

// BlockTemporary blocks the sender for the given number of hours,
// replacing any existing entry.
func (b *Blocker) BlockTemporary(senderID int64, hours int) error {
	nowMs := b.now().UnixMilli()
	until := nowMs + int64(hours)*int64(time.Hour/time.Millisecond)
	return b.store.Upsert(&models.BlacklistEntry{
		SenderID:     senderID,
		BlockedUntil: &until,
		IsPermanent:  false,
		BlockedAt:    nowMs,
	})
}

// BlockPermanent blocks the sender forever, replacing any existing entry
func (b *Blocker) BlockPermanent(senderID int64) error {
	return b.store.Upsert(&models.BlacklistEntry{
		SenderID:    senderID,
		IsPermanent: true,
		BlockedAt:   b.now().UnixMilli(),
	})
}

// Unblock removes the sender from the blacklist
func (b *Blocker) Unblock(senderID int64) error {
	return b.store.Delete(senderID)
}

// Entry returns the blacklist entry for a sender, nil if absent
func (b *Blocker) Entry(senderID int64) (*models.BlacklistEntry, error) {
	return b.store.Get(senderID)
}

// Entries returns all blacklist entries, most recent block first
func (b *Blocker) Entries() ([]models.BlacklistEntry, error) {
	return b.store.ListAll()
}

// HoursLeft returns the whole hours remaining on a temporary block,
// rounded up. Zero means the block has expired.
func (b *Blocker) HoursLeft(entry *models.BlacklistEntry) int {
	if entry.BlockedUntil == nil {
		return 0
	}
	leftMs := *entry.BlockedUntil - b.now().UnixMilli()
	if leftMs <= 0 {
		return 0
	}
	hourMs := int64(time.Hour / time.Millisecond)
	return int((leftMs + hourMs - 1) / hourMs)
}

// ParseBlockHours validates free-text wizard input as a block duration
func ParseBlockHours(text string) (int, error) {
	hours, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || hours <= 0 {
		return 0, ErrInvalidHours
	}
	return hours, nil
}
