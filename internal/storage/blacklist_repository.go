package storage

import (
	"errors"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlacklistRepository handles database operations for BlacklistEntry
type BlacklistRepository struct {
	db *gorm.DB
}

// NewBlacklistRepository creates a new BlacklistRepository
func NewBlacklistRepository(db *gorm.DB) *BlacklistRepository {
	return &BlacklistRepository{db: db}
}

// MigrateTable ensures the blacklist table exists
func (r *BlacklistRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.BlacklistEntry{})
}

// Get returns the entry for a sender, or nil if the sender is not listed
func (r *BlacklistRepository) Get(senderID int64) (*models.BlacklistEntry, error) {
	var entry models.BlacklistEntry
	result := r.db.First(&entry, "sender_id = ?", senderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &entry, nil
}

// Upsert inserts or fully replaces the entry for entry.SenderID.
// Switching between temporary and permanent is a replace, not a merge.
func (r *BlacklistRepository) Upsert(entry *models.BlacklistEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sender_id"}},
		UpdateAll: true,
	}).Create(entry).Error
}

// Delete removes the entry for a sender
func (r *BlacklistRepository) Delete(senderID int64) error {
	return r.db.Delete(&models.BlacklistEntry{}, "sender_id = ?", senderID).Error
}

// ListAll returns all entries ordered by blocked_at descending
func (r *BlacklistRepository) ListAll() ([]models.BlacklistEntry, error) {
	var entries []models.BlacklistEntry
	result := r.db.Order("blocked_at DESC").Find(&entries)
	return entries, result.Error
}
