package http

import (
	"github.com/gin-gonic/gin"
	"github.com/vkozyar/catalog-service/internal/auth"
	"github.com/vkozyar/catalog-service/internal/config"
	"github.com/vkozyar/catalog-service/internal/http/controller"
	"github.com/vkozyar/catalog-service/internal/http/middleware"
)

// InitRouter wires the catalog endpoints. Reads are public, writes require
// an authenticated manager or admin, and category writes are admin only.
func InitRouter(
	conf *config.Config,
	server *gin.Engine,
	baseCtr *controller.Controller,
	productCtr *controller.ProductController,
	categoryCtr *controller.CategoryController,
	toppingCtr *controller.ToppingController,
) *gin.Engine {
	// Apply recovery middleware globally to prevent panics from crashing the server
	server.Use(middleware.Recovery())

	server.GET("/", baseCtr.Ping)

	authenticate := middleware.Authenticate(conf.Auth.JWTSecret)
	staff := middleware.RequireRole(auth.RoleAdmin, auth.RoleManager)
	admin := middleware.RequireRole(auth.RoleAdmin)

	products := server.Group("/products")
	{
		products.POST("", authenticate, staff, productCtr.CreateProduct)
		products.PUT("/:productId", authenticate, staff, productCtr.UpdateProduct)
		products.GET("", productCtr.ListProducts)
		products.GET("/:productId", productCtr.GetProduct)
	}

	categories := server.Group("/categories")
	{
		categories.POST("", authenticate, admin, categoryCtr.CreateCategory)
		categories.PUT("/:categoryId", authenticate, admin, categoryCtr.UpdateCategory)
		categories.DELETE("/:categoryId", authenticate, admin, categoryCtr.DeleteCategory)
		categories.GET("", categoryCtr.ListCategories)
		categories.GET("/:categoryId", categoryCtr.GetCategory)
	}

	toppings := server.Group("/toppings")
	{
		toppings.POST("", authenticate, staff, toppingCtr.CreateTopping)
		toppings.PUT("/:toppingId", authenticate, staff, toppingCtr.UpdateTopping)
		toppings.GET("", toppingCtr.ListToppings)
		toppings.GET("/:toppingId", toppingCtr.GetTopping)
	}

	return server
}
