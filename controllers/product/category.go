package productcontroller

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

var nonWordChars = regexp.MustCompile(`[^\w-]+`)
var repeatedDashes = regexp.MustCompile(`-+`)

// Slugify turns a display name into a URL-safe category id.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonWordChars.ReplaceAllString(s, "")
	s = repeatedDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

type CreateCategoryInput struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon" binding:"required"`
}

type UpdateCategoryInput struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

type CreateSubcategoryInput struct {
	Name       string `json:"name" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
}

type UpdateSubcategoryInput struct {
	Name *string `json:"name"`
}

// GET /categories
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Subcategories").Order("name asc").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// POST /admin/categories
func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category := models.Category{
			ID:   Slugify(input.Name),
			Name: input.Name,
			Icon: input.Icon,
		}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// PUT /admin/categories/:id
func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		var input UpdateCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name != nil {
			category.Name = *input.Name
		}
		if input.Icon != nil {
			category.Icon = *input.Icon
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// DELETE /admin/categories/:id
// Refuses to delete a category whose subcategories still contain products.
func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.Preload("Subcategories").First(&category, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		if len(category.Subcategories) > 0 {
			subIDs := make([]string, 0, len(category.Subcategories))
			for _, sub := range category.Subcategories {
				subIDs = append(subIDs, sub.ID)
			}
			var productCount int64
			if err := db.Model(&models.Product{}).Where("subcategory_id IN ?", subIDs).Count(&productCount).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category products"})
				return
			}
			if productCount > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete category. Subcategories contain products."})
				return
			}
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("category_id = ?", id).Delete(&models.Subcategory{}).Error; err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// POST /admin/subcategories
func CreateSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateSubcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			}
			return
		}

		subcategory := models.Subcategory{
			ID:         Slugify(input.CategoryID + "-" + input.Name),
			Name:       input.Name,
			CategoryID: input.CategoryID,
		}
		if err := db.Create(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subcategory"})
			return
		}

		c.JSON(http.StatusCreated, subcategory)
	}
}

// PUT /admin/subcategories/:id
func UpdateSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategory"})
			}
			return
		}

		var input UpdateSubcategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Name != nil {
			subcategory.Name = *input.Name
		}

		if err := db.Save(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subcategory"})
			return
		}

		c.JSON(http.StatusOK, subcategory)
	}
}

// DELETE /admin/subcategories/:id
// Refuses to delete a subcategory that still has products.
func DeleteSubcategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var subcategory models.Subcategory
		if err := db.First(&subcategory, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subcategory"})
			}
			return
		}

		var productCount int64
		if err := db.Model(&models.Product{}).Where("subcategory_id = ?", id).Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check subcategory products"})
			return
		}
		if productCount > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete subcategory. It is associated with products."})
			return
		}

		if err := db.Delete(&subcategory).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subcategory"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted"})
	}
}
