package repository

import (
	"github.com/shoptalk/shoptalk-api/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create creates a new message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// FindByID finds an active message by ID with the sender preloaded
func (r *GormMessageRepository) FindByID(id uint64) (*models.Message, error) {
	var message models.Message
	if err := r.db.Preload("Sender").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// ListByChannel lists up to limit active messages in descending ID order.
// A non-zero before cursor restricts the page to messages older than it.
func (r *GormMessageRepository) ListByChannel(channelID uint64, limit int, before uint64) ([]models.Message, error) {
	var messages []models.Message

	query := r.db.Where("channel_id = ?", channelID)
	if before > 0 {
		query = query.Where("id < ?", before)
	}

	if err := query.
		Order("id DESC").
		Limit(limit).
		Preload("Sender").
		Preload("Attachments").
		Find(&messages).Error; err != nil {
		return nil, err
	}

	return messages, nil
}
