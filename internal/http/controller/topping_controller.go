package controller

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vkozyar/catalog-service/internal/auth"
	"github.com/vkozyar/catalog-service/internal/http/middleware"
	"github.com/vkozyar/catalog-service/internal/model"
	"github.com/vkozyar/catalog-service/internal/repository"
	"github.com/vkozyar/catalog-service/internal/service"
)

// ToppingService is the topping write and read orchestration the controller
// delegates to.
type ToppingService interface {
	Create(ctx context.Context, in service.ToppingInput, image io.Reader) (string, error)
	Update(ctx context.Context, caller auth.Caller, id string, in service.ToppingInput, image io.Reader) (string, error)
	List(ctx context.Context, f repository.ToppingFilter) ([]model.Topping, error)
	Get(ctx context.Context, id string) (*model.Topping, error)
}

// ToppingController handles HTTP requests for topping operations.
type ToppingController struct {
	toppingService ToppingService
}

// NewToppingController creates a new ToppingController with the given topping service.
func NewToppingController(toppingService ToppingService) *ToppingController {
	return &ToppingController{
		toppingService: toppingService,
	}
}

// ToppingForm represents the multipart form fields of a topping create or update.
type ToppingForm struct {
	Name      string  `form:"name" binding:"required"`
	Price     float64 `form:"price" binding:"required"`
	TenantID  string  `form:"tenantId"`
	IsPublish bool    `form:"isPublish"`
}

func (f ToppingForm) toInput() service.ToppingInput {
	return service.ToppingInput{
		Name:      f.Name,
		Price:     f.Price,
		TenantID:  f.TenantID,
		IsPublish: f.IsPublish,
	}
}

// CreateTopping handles the HTTP POST request for creating a new topping.
func (tc *ToppingController) CreateTopping(c *gin.Context) {
	var form ToppingForm
	if err := c.ShouldBind(&form); err != nil {
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

	id, err := tc.toppingService.Create(c.Request.Context(), form.toInput(), image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateTopping handles the HTTP PUT request for updating a topping. The
// image field is optional on update.
func (tc *ToppingController) UpdateTopping(c *gin.Context) {
	var form ToppingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}
	caller := auth.Caller{Role: claims.Role, Tenant: claims.Tenant}

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

	id := c.Param("toppingId")
	if _, err := tc.toppingService.Update(c.Request.Context(), caller, id, form.toInput(), imageReader); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListToppingsRequest represents the query parameters of a topping listing.
type ListToppingsRequest struct {
	TenantID  string `form:"tenantId"`
	IsPublish string `form:"isPublish"`
}

// ListToppings handles the HTTP GET request for listing toppings.
func (tc *ToppingController) ListToppings(c *gin.Context) {
	var req ListToppingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter := repository.ToppingFilter{
		TenantID:      req.TenantID,
		OnlyPublished: req.IsPublish == "true",
	}

	toppings, err := tc.toppingService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toppings)
}

// GetTopping handles the HTTP GET request for a single topping.
func (tc *ToppingController) GetTopping(c *gin.Context) {
	topping, err := tc.toppingService.Get(c.Request.Context(), c.Param("toppingId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topping)
}
