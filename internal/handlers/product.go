package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shoptalk/shoptalk-api/internal/dto"
	apierrors "github.com/shoptalk/shoptalk-api/internal/errors"
	"github.com/shoptalk/shoptalk-api/internal/repository"
	"github.com/shoptalk/shoptalk-api/internal/services"
	"github.com/shoptalk/shoptalk-api/internal/utils"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	products *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List handles GET /api/products with optional category and brand
// filters.
func (h *ProductHandler) List(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	filter := repository.ProductFilter{
		Page:     pagination.Page,
		PageSize: pagination.Limit,
	}
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.Validation(c, "Category must be a valid ID")
			return
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("brand"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.Validation(c, "Brand must be a valid ID")
			return
		}
		filter.BrandID = &id
	}

	products, total, err := h.products.ListProducts(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to list products")
		return
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: products,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.Limit,
	})
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Product not found", "Product does not exist")
		return
	}

	product, err := h.products.GetProduct(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			apierrors.NotFound(c, "Product not found", "Product does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to load product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// ListCategories handles GET /api/categories.
func (h *ProductHandler) ListCategories(c *gin.Context) {
	categories, err := h.products.ListCategories()
	if err != nil {
		apierrors.InternalError(c, "Failed to list categories")
		return
	}

	c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}
