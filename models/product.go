package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Price         float64      `gorm:"not null" json:"price"`
	ImageURL      string       `json:"imageUrl"`
	Description   string       `json:"description"`
	SubcategoryID string       `gorm:"index;not null" json:"subcategoryId"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
