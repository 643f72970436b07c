package models

import (
	"time"

	"gorm.io/gorm"
)

// ChannelMember grants a user a role within a channel. The composite
// primary key keeps the (channel, user) pair unique; removal is a soft
// delete so that message authorship history survives, and re-adding a
// removed member resurrects the row instead of inserting a duplicate.
type ChannelMember struct {
	ChannelID uint64         `gorm:"primarykey" json:"channelId"`
	UserID    uint64         `gorm:"primarykey" json:"userId"`
	Role      Role           `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt time.Time      `json:"joinedAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Channel Channel     `gorm:"foreignKey:ChannelID" json:"-"`
	User    UserAccount `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeSave rejects roles outside the closed set before they reach
// storage.
func (m *ChannelMember) BeforeSave(*gorm.DB) error {
	_, err := ParseRole(string(m.Role))
	return err
}
