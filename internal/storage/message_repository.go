package storage

import (
	"errors"

	"github.com/KOSMOS-DESIGN/kosmos-design/internal/models"

	"gorm.io/gorm"
)

// MessageRepository handles database operations for Message
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// MigrateTable ensures the messages table exists
func (r *MessageRepository) MigrateTable() error {
	return r.db.AutoMigrate(&models.Message{})
}

// Insert stores a new inbound message
func (r *MessageRepository) Insert(msg *models.Message) error {
	return r.db.Create(msg).Error
}

// SendersSummary returns one row per sender with total and unread
// counts, ordered by most recent message first.
func (r *MessageRepository) SendersSummary() ([]models.SenderSummary, error) {
	var rows []models.SenderSummary
	err := r.db.Raw(`
		SELECT sender_id,
		       MAX(username) AS username,
		       MAX(first_name) AS first_name,
		       MAX(last_name) AS last_name,
		       COUNT(*) AS total,
		       SUM(CASE WHEN answered = false THEN 1 ELSE 0 END) AS unread
		FROM messages
		GROUP BY sender_id
		ORDER BY MAX(created_at) DESC`).Scan(&rows).Error
	return rows, err
}

// ListBySender returns all messages from a sender, newest first
func (r *MessageRepository) ListBySender(senderID int64) ([]models.Message, error) {
	var msgs []models.Message
	result := r.db.Where("sender_id = ?", senderID).Order("created_at DESC").Find(&msgs)
	return msgs, result.Error
}

// GetByID returns a message by id, or nil if it does not exist
func (r *MessageRepository) GetByID(id int64) (*models.Message, error) {
	var msg models.Message
	result := r.db.First(&msg, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &msg, nil
}

// MarkAnswered flips the answered flag on a message
func (r *MessageRepository) MarkAnswered(id int64) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("answered", true).Error
}

// DeleteByID removes a message
func (r *MessageRepository) DeleteByID(id int64) error {
	return r.db.Delete(&models.Message{}, id).Error
}

// CountUnread returns the number of messages not yet answered
func (r *MessageRepository) CountUnread() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("answered = ?", false).Count(&count).Error
	return count, err
}
