package dto

import "github.com/shoptalk/shoptalk-api/internal/models"

// ProductListResponse is one page of the catalog.
type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
}

// CategoryListResponse wraps the catalog categories.
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}
