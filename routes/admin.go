package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	adminController "github.com/ducanh0310/phu-hung-galaxy/controllers/admin"
	orderControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/order"
	productControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/product"
	"github.com/ducanh0310/phu-hung-galaxy/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints behind the admin JWT.
func SetupAdminRoutes(api *gin.RouterGroup, db *gorm.DB, uploadDir string) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.ValidateAdminToken)
	{
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(db))
		adminGroup.POST("/upload", adminController.UploadImage(uploadDir))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
			productAdmin.GET("/export", productControllers.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.POST("", productControllers.CreateSubcategory(db))
			subcategoryAdmin.PUT("/:id", productControllers.UpdateSubcategory(db))
			subcategoryAdmin.DELETE("/:id", productControllers.DeleteSubcategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		}
	}
}
