package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/service"
)

// CategoryService is the category management the controller delegates to.
type CategoryService interface {
	Create(ctx context.Context, in service.CategoryInput) (string, error)
	Update(ctx context.Context, id string, in service.CategoryInput) error
	List(ctx context.Context) ([]model.Category, error)
	Get(ctx context.Context, id string) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryController handles HTTP requests for category operations.
type CategoryController struct {
	categoryService CategoryService
}

// NewCategoryController creates a new CategoryController with the given category service.
func NewCategoryController(categoryService CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// CategoryRequest represents the request body for creating or updating a category.
type CategoryRequest struct {
	Name               string                         `json:"name" binding:"required"`
	PriceConfiguration map[string]model.CategoryPrice `json:"priceConfiguration" binding:"required"`
	Attributes         []model.CategoryAttribute      `json:"attributes"`
	HasToppings        bool                           `json:"hasToppings"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	attributes := r.Attributes
	if attributes == nil {
		attributes = []model.CategoryAttribute{}
	}
	return service.CategoryInput{
		Name:               r.Name,
		PriceConfiguration: r.PriceConfiguration,
		Attributes:         attributes,
		HasToppings:        r.HasToppings,
	}
}

// CreateCategory handles the HTTP POST request for creating a new category.
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := cc.categoryService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateCategory handles the HTTP PUT request for updating a category.
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("categoryId")
	if err := cc.categoryService.Update(c.Request.Context(), id, req.toInput()); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListCategories handles the HTTP GET request for listing all categories.
func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory handles the HTTP GET request for a single category.
func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categoryService.Get(c.Request.Context(), c.Param("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles the HTTP DELETE request for removing a category.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	if err := cc.categoryService.Delete(c.Request.Context(), c.Param("categoryId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted successfully"})
}
