package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

// GET /products?subcategory=&q=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subcategory := c.Query("subcategory")
		search := c.Query("q")

		query := db.Model(&models.Product{}).
			Preload("Subcategory").
			Preload("Subcategory.Category")

		if subcategory != "" {
			query = query.Where("subcategory_id = ?", subcategory)
		}

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}

		var products []models.Product
		if err := query.Order("name asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
