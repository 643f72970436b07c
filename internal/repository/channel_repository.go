package repository

import (
	"github.com/shoptalk/shoptalk-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormChannelRepository is a GORM implementation of ChannelRepository
type GormChannelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new ChannelRepository
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &GormChannelRepository{db: db}
}

// CreateWithAdmin creates a channel and its first admin membership atomically
func (r *GormChannelRepository) CreateWithAdmin(channel *models.Channel, adminID uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(channel).Error; err != nil {
			return err
		}

		member := models.ChannelMember{
			ChannelID: channel.ID,
			UserID:    adminID,
			Role:      models.RoleAdmin,
		}
		return tx.Create(&member).Error
	})
}

// FindByID finds an active channel by ID
func (r *GormChannelRepository) FindByID(id uint64) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.First(&channel, id).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

// FindByName finds an active channel by its unique name
func (r *GormChannelRepository) FindByName(name string) (*models.Channel, error) {
	var channel models.Channel
	if err := r.db.Where("name = ?", name).First(&channel).Error; err != nil {
		return nil, err
	}
	return &channel, nil
}

// Update updates a channel
func (r *GormChannelRepository) Update(channel *models.Channel) error {
	return r.db.Save(channel).Error
}

// Delete soft deletes a channel and its memberships. Messages are kept
// for history; they become unreachable because every read is gated on
// the channel being active.
func (r *GormChannelRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", id).Delete(&models.ChannelMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Channel{}, id).Error
	})
}

// ListForUser lists the active memberships of a user with channels preloaded
func (r *GormChannelRepository) ListForUser(userID uint64) ([]models.ChannelMember, error) {
	var memberships []models.ChannelMember
	if err := r.db.Preload("Channel").
		Where("user_id = ?", userID).
		Find(&memberships).Error; err != nil {
		return nil, err
	}
	return memberships, nil
}

// FindMember finds the active membership for a (channel, user) pair
func (r *GormChannelRepository) FindMember(channelID, userID uint64) (*models.ChannelMember, error) {
	var member models.ChannelMember
	if err := r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists the active members of a channel with users preloaded
func (r *GormChannelRepository) ListMembers(channelID uint64) ([]models.ChannelMember, error) {
	var members []models.ChannelMember
	if err := r.db.Preload("User").
		Where("channel_id = ?", channelID).
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// CountMembers counts the active members of a channel
func (r *GormChannelRepository) CountMembers(channelID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ChannelMember{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

// AddMembers grants the role to each user. The composite primary key is
// the final arbiter for concurrent adds: an existing row, active or
// soft-deleted, is resurrected in place instead of duplicated.
func (r *GormChannelRepository) AddMembers(channelID uint64, userIDs []uint64, role models.Role) error {
	members := make([]models.ChannelMember, len(userIDs))
	for i, userID := range userIDs {
		members[i] = models.ChannelMember{
			ChannelID: channelID,
			UserID:    userID,
			Role:      role,
		}
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "channel_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"deleted_at": gorm.Expr("NULL")}),
		}).
		Create(&members).Error
}

// RemoveMember soft deletes a membership
func (r *GormChannelRepository) RemoveMember(channelID, userID uint64) error {
	return r.db.Where("channel_id = ? AND user_id = ?", channelID, userID).
		Delete(&models.ChannelMember{}).Error
}
