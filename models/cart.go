package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cart struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	UserID    string     `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is unique per (cart, product); repeat adds bump the quantity.
type CartItem struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	CartID    string   `gorm:"uniqueIndex:idx_cart_product;not null" json:"cartId"`
	ProductID string   `gorm:"uniqueIndex:idx_cart_product;not null" json:"productId"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	AddedAt   time.Time `json:"addedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
