package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/ducanh0310/phu-hung-galaxy/controllers/order"
)

// SetupRoutes wires up the public catalog, auth, user and admin route groups
// under the /api/v1 prefix.
func SetupRoutes(r *gin.Engine, db *gorm.DB, uploadDir string) {
	api := r.Group("/api/v1")

	api.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// websocket feed of newly placed orders, consumed by the admin dashboard
	api.GET("/orders/ws", orderControllers.OrderWebSocketHandler)

	SetupCatalogRoutes(api, db)
	SetupAuthRoutes(api, db)
	SetupUserRoutes(api, db)
	SetupAdminRoutes(api, db, uploadDir)
}
