package services

import (
	"errors"
	"fmt"

	"github.com/shoptalk/shoptalk-api/internal/models"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService provides read access to the catalog.
type ProductService struct {
	products repository.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{
		products: products,
	}
}

// ListProducts retrieves products with filtering and pagination.
func (s *ProductService) ListProducts(filter repository.ProductFilter) ([]models.Product, int64, error) {
	products, total, err := s.products.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	return products, total, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(id uint64) (*models.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return product, nil
}

// ListCategories lists all catalog categories.
func (s *ProductService) ListCategories() ([]models.Category, error) {
	categories, err := s.products.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
