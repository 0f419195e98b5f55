package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, db *gorm.DB) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterUser(db))
		authGroup.POST("/login", auth.LoginUser(db))
		authGroup.POST("/admin/login", auth.LoginAdmin(db))
	}
}
