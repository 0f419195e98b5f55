package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// ParseOrderStatus maps a user-supplied string onto a known status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusShipped:
		return OrderStatusShipped, nil
	case OrderStatusDelivered:
		return OrderStatusDelivered, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Order is an immutable snapshot of the cart at purchase time. Total is
// always computed server-side.
type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"index;not null" json:"userId"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64     `gorm:"not null" json:"total"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'PENDING'" json:"status"`
	ShippingAddress *string     `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type OrderItem struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	OrderID   string   `gorm:"index;not null" json:"orderId"`
	ProductID string   `gorm:"not null" json:"productId"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"` // unit price at time of purchase
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
