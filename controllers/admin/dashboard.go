package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

type DashboardStats struct {
	Products      int64 `json:"products"`
	Categories    int64 `json:"categories"`
	Subcategories int64 `json:"subcategories"`
	Orders        int64 `json:"orders"`
	Users         int64 `json:"users"`
}

// GET /admin/dashboard
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stats DashboardStats

		counts := []struct {
			model interface{}
			dest  *int64
		}{
			{&models.Product{}, &stats.Products},
			{&models.Category{}, &stats.Categories},
			{&models.Subcategory{}, &stats.Subcategories},
			{&models.Order{}, &stats.Orders},
			{&models.User{}, &stats.Users},
		}

		for _, count := range counts {
			if err := db.Model(count.model).Count(count.dest).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
				return
			}
		}

		c.JSON(http.StatusOK, stats)
	}
}
