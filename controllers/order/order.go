package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ducanh0310/phu-hung-galaxy/apperr"
	"github.com/ducanh0310/phu-hung-galaxy/models"
)

type CreateOrderInput struct {
	ShippingAddress *string `json:"shippingAddress"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// BuildOrderItems snapshots cart items into order items, capturing the unit
// price at the time of purchase, and returns the server-computed total.
func BuildOrderItems(items []models.CartItem) ([]models.OrderItem, float64) {
	var total float64
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		price := 0.0
		if item.Product != nil {
			price = item.Product.Price
		}
		total += price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	return orderItems, total
}

// CreateOrder turns the user's cart into an order inside one transaction:
// the order only exists if the cart was also cleared.
func CreateOrder(db *gorm.DB, userID string, shippingAddress *string) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEmptyCart
		}
		return nil, apperr.Wrap(apperr.ErrInternalServer, err)
	}
	if len(cart.Items) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	orderItems, total := BuildOrderItems(cart.Items)

	order := models.Order{
		UserID:          userID,
		Items:           orderItems,
		Total:           total,
		Status:          models.OrderStatusPending,
		ShippingAddress: shippingAddress,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrInternalServer, err)
	}

	if err := db.Preload("Items").Preload("Items.Product").First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrInternalServer, err)
	}
	return &order, nil
}

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		// the body is optional, the address is the only field it may carry
		var input CreateOrderInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
				return
			}
		}

		order, err := CreateOrder(db, userID, input.ShippingAddress)
		if err != nil {
			apperr.Respond(c, err)
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("id")

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Where("id = ? AND user_id = ?", orderID, userID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result := db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
