package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/product"
)

// SetupCatalogRoutes registers the public browsing endpoints.
func SetupCatalogRoutes(api *gin.RouterGroup, db *gorm.DB) {
	api.GET("/categories", productControllers.GetAllCategories(db))
	api.GET("/products", productControllers.GetProducts(db))
	api.GET("/products/:id", productControllers.GetProductByID(db))
}
