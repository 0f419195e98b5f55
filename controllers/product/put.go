package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	ImageURL      *string  `json:"imageUrl"`
	Description   *string  `json:"description"`
	SubcategoryID *string  `json:"subcategoryId"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Price != nil {
			if *input.Price <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be positive"})
				return
			}
			updates["price"] = *input.Price
		}
		if input.ImageURL != nil {
			updates["image_url"] = *input.ImageURL
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.SubcategoryID != nil {
			var subcategory models.Subcategory
			if err := db.First(&subcategory, "id = ?", *input.SubcategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Subcategory does not exist"})
				return
			}
			updates["subcategory_id"] = *input.SubcategoryID
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
