package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/models"
)

type AddCartItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// upsertCartItem computes the row AddCartItem persists: an existing row
// accumulates quantity, a missing one starts at the requested amount. The
// second return reports whether a new row must be created.
func upsertCartItem(existing *models.CartItem, cartID, productID string, quantity int) (models.CartItem, bool) {
	if existing == nil {
		return models.CartItem{
			CartID:    cartID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		}, true
	}
	item := *existing
	item.Quantity += quantity
	item.AddedAt = time.Now()
	return item, false
}

// findOrCreateCart returns the user's cart, creating it lazily on first use.
func findOrCreateCart(db *gorm.DB, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		err = db.Create(&cart).Error
	}
	return cart, err
}

// GET /cart
// Users who never touched their cart get an empty structure, not a 404.
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Joins("JOIN products ON products.id = cart_items.product_id").
				Order("products.name asc")
		}).Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, models.Cart{UserID: userID, Items: []models.CartItem{}})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// POST /cart/items
// Upsert: adding a product already in the cart increments its quantity.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		cart, err := findOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var existing *models.CartItem
		var found models.CartItem
		err = db.Where("cart_id = ? AND product_id = ?", cart.ID, input.ProductID).First(&found).Error
		if err == nil {
			existing = &found
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item, created := upsertCartItem(existing, cart.ID, input.ProductID, input.Quantity)
		if created {
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
			item.Product = &product
			c.JSON(http.StatusCreated, item)
			return
		}

		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		item.Product = &product
		c.JSON(http.StatusOK, item)
	}
}

// PUT /cart/items/:productId
// Sets an absolute quantity. Quantity <= 0 is rejected; clients remove instead.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("productId")

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be a positive integer"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		item.Quantity = input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		db.Preload("Product").First(&item, "id = ?", item.ID)
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /cart/items/:productId
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		productID := c.Param("productId")

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("cart_id = ? AND product_id = ?", cart.ID, productID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
