package models

import (
	"time"

	"gorm.io/gorm"
)

type UserAccount struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Name         string         `gorm:"type:varchar(255);not null" json:"name"`
	Title        *string        `gorm:"type:varchar(100)" json:"title,omitempty"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Memberships []ChannelMember `gorm:"foreignKey:UserID" json:"-"`
	Messages    []Message       `gorm:"foreignKey:UserID" json:"-"`
	Reviews     []Review        `gorm:"foreignKey:UserID" json:"-"`
	Wishlists   []Wishlist      `gorm:"foreignKey:UserID" json:"-"`
	Comparisons []Comparison    `gorm:"foreignKey:UserID" json:"-"`
}
