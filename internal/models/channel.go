package models

import (
	"time"

	"gorm.io/gorm"
)

// Channel is a named communication space. Deleting a channel is a soft
// delete; all API operations treat a deleted channel as not found.
type Channel struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Members  []ChannelMember `gorm:"foreignKey:ChannelID" json:"-"`
	Messages []Message       `gorm:"foreignKey:ChannelID" json:"-"`
}
