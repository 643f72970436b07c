package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a text message within a channel. UserID is nullable: when
// the author account is deleted the message survives with no sender.
type Message struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	ChannelID uint64         `gorm:"not null;index" json:"channelId"`
	UserID    *uint64        `gorm:"index" json:"userId,omitempty"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Channel     Channel      `gorm:"foreignKey:ChannelID" json:"-"`
	Sender      *UserAccount `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"sender,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"attachments,omitempty"`
}

// Attachment is a file URL bound to a message. Rows cascade with their
// message; the file bytes themselves live elsewhere.
type Attachment struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	MessageID uint64         `gorm:"not null;index" json:"messageId"`
	FileURL   string         `gorm:"type:varchar(255);not null" json:"fileUrl"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Message Message `gorm:"foreignKey:MessageID" json:"-"`
}
