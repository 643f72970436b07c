package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	ProductID uint64         `gorm:"not null;index" json:"productId"`
	UserID    *uint64        `gorm:"index" json:"userId,omitempty"`
	Rating    int            `gorm:"not null" json:"rating"`
	Comment   *string        `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Product Product      `gorm:"foreignKey:ProductID" json:"-"`
	User    *UserAccount `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

type Wishlist struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	ProductID uint64    `gorm:"not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`

	User    UserAccount `gorm:"foreignKey:UserID" json:"-"`
	Product Product     `gorm:"foreignKey:ProductID" json:"-"`
}

type Comparison struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	ProductID uint64    `gorm:"not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`

	User    UserAccount `gorm:"foreignKey:UserID" json:"-"`
	Product Product     `gorm:"foreignKey:ProductID" json:"-"`
}
