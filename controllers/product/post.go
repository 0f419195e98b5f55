package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

type CreateProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	ImageURL      string  `json:"imageUrl" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	SubcategoryID string  `json:"subcategoryId" binding:"required"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", input.SubcategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate subcategory"})
			}
			return
		}

		product := models.Product{
			Name:          input.Name,
			Price:         input.Price,
			ImageURL:      input.ImageURL,
			Description:   input.Description,
			SubcategoryID: input.SubcategoryID,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
