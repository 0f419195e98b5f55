package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/cart"
	orderControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/order"
	"github.com/ducanh0310/phu-hung-galaxy/middleware"
)

// SetupUserRoutes registers the JWT-protected cart and order endpoints.
func SetupUserRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cartGroup := api.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.GET("", cartControllers.GetCart(db))
		cartGroup.POST("/items", cartControllers.AddCartItem(db))
		cartGroup.PUT("/items/:productId", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/items/:productId", cartControllers.DeleteCartItem(db))
	}

	orderGroup := api.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("", orderControllers.CreateOrderHandler(db))
		orderGroup.GET("", orderControllers.GetUserOrdersHandler(db))
		orderGroup.GET("/:id", orderControllers.GetOrderByIDHandler(db))
	}
}
