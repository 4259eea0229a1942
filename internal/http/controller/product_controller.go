package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkozyar/catalog-service/internal/auth"
	"github.com/vkozyar/catalog-service/internal/http/middleware"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
	"github.com/vkozyar/catalog-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductService is the product orchestration the controller delegates to.
type ProductService interface {
	Create(ctx context.Context, in service.ProductInput, image io.Reader) (string, error)
	Update(ctx context.Context, caller auth.Caller, id string, in service.ProductInput, image io.Reader) (string, error)
	List(ctx context.Context, searchText string, f repository.ProductFilter, p repository.Pagination) (*model.ProductPage, error)
	Get(ctx context.Context, id string) (*model.Product, error)
}

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductForm represents the multipart form for creating or updating a
// product. Nested fields arrive as JSON strings alongside the image part.
type ProductForm struct {
	Name               string `form:"name" binding:"required"`
	Description        string `form:"description" binding:"required"`
	PriceConfiguration string `form:"priceConfiguration" binding:"required"`
	Attributes         string `form:"attributes" binding:"required"`
	TenantID           string `form:"tenantId" binding:"required"`
	CategoryID         string `form:"categoryId" binding:"required"`
	IsPublish          bool   `form:"isPublish"`
}

func (f ProductForm) toInput() (service.ProductInput, error) {
	var priceConfiguration model.PriceConfiguration
	if err := json.Unmarshal([]byte(f.PriceConfiguration), &priceConfiguration); err != nil {
		return service.ProductInput{}, fmt.Errorf("invalid priceConfiguration: %w", err)
	}

	var attributes []model.Attribute
	if err := json.Unmarshal([]byte(f.Attributes), &attributes); err != nil {
		return service.ProductInput{}, fmt.Errorf("invalid attributes: %w", err)
	}

	categoryID, err := primitive.ObjectIDFromHex(f.CategoryID)
	if err != nil {
		return service.ProductInput{}, fmt.Errorf("invalid categoryId: %s", f.CategoryID)
	}

	return service.ProductInput{
		Name:               f.Name,
		Description:        f.Description,
		PriceConfiguration: priceConfiguration,
		Attributes:         attributes,
		TenantID:           f.TenantID,
		CategoryID:         categoryID,
		IsPublish:          f.IsPublish,
	}, nil
}

// formImage extracts the optional image part, enforcing the size cap. The
// returned closer is nil when no image part was supplied.
func formImage(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("invalid image upload: %w", err)
	}
	if file.Size > maxImageSize {
		return nil, fmt.Errorf("image exceeds the %d byte limit", maxImageSize)
	}
	image, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to read image upload: %w", err)
	}
	return image, nil
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := form.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer image.Close()

	id, err := pc.productService.Create(c.Request.Context(), input, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateProduct handles the HTTP PUT request for updating an existing
// product. The image part is optional; without it the stored key is kept.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := form.toInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var imageReader io.Reader
	if image != nil {
		defer image.Close()
		imageReader = image
	}

	caller := auth.Caller{Role: claims.Role, Tenant: claims.Tenant}
	id, err := pc.productService.Update(c.Request.Context(), caller, c.Param("productId"), input, imageReader)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListProductsRequest represents the query parameters for listing products.
type ListProductsRequest struct {
	Q          string `form:"q"`
	TenantID   string `form:"tenantId"`
	CategoryID string `form:"categoryId"`
	IsPublish  string `form:"isPublish"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

// ListProducts handles the HTTP GET request for listing products with
// filters and pagination.
func (pc *ProductController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repository.ProductFilter{
		TenantID:      req.TenantID,
		OnlyPublished: req.IsPublish == "true",
	}
	// A malformed category id is ignored rather than rejected to keep the
	// search permissive.
	if categoryID, err := primitive.ObjectIDFromHex(req.CategoryID); err == nil {
		filter.CategoryID = categoryID
	}

	page, err := pc.productService.List(c.Request.Context(), req.Q, filter, repository.Pagination{
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetProduct handles the HTTP GET request for a single product.
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}
