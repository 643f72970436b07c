package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint64         `gorm:"primarykey" json:"id"`
	Name            string         `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string        `gorm:"type:text" json:"description,omitempty"`
	SKU             string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"sku"`
	Price           float64        `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice   *float64       `gorm:"type:decimal(12,2)" json:"originalPrice,omitempty"`
	DiscountPercent *int           `json:"discountPercent,omitempty"`
	Availability    string         `gorm:"type:varchar(50);not null" json:"availability"`
	Rating          *float64       `gorm:"type:decimal(3,2)" json:"rating,omitempty"`
	ReviewCount     *int           `json:"reviewCount,omitempty"`
	CategoryID      uint64         `gorm:"not null;index" json:"categoryId"`
	BrandID         *uint64        `gorm:"index" json:"brandId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Category Category        `gorm:"foreignKey:CategoryID" json:"-"`
	Brand    *Brand          `gorm:"foreignKey:BrandID" json:"-"`
	Images   []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Options  []ProductOption `gorm:"foreignKey:ProductID" json:"options,omitempty"`
	Reviews  []Review        `gorm:"foreignKey:ProductID" json:"-"`
}

type ProductImage struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProductID uint64    `gorm:"not null;index" json:"productId"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"imageUrl"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

type ProductOption struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProductID uint64    `gorm:"not null;index" json:"productId"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Value     string    `gorm:"type:varchar(255);not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
