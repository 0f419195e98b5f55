package models

// Category ids are slugs derived from the name, so the storefront can use
// them directly in URLs.
type Category struct {
	ID            string        `gorm:"primaryKey" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"subcategories"`
}

type Subcategory struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	CategoryID string    `gorm:"index;not null" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
