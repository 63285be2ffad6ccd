package models

import "gorm.io/gorm"

// Category groups products for browsing.
type Category struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" validate:"required,min=1,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Product represents a product in the store. SKU is unique across all products.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=3,max=100"`
	Description string    `json:"description" validate:"omitempty,max=500"`
	SKU         string    `json:"sku" gorm:"column:sku;uniqueIndex;type:varchar(64)" validate:"required,max=64"`
	CategoryID  string    `json:"category_id" gorm:"type:varchar(36)" validate:"required,uuid"`
	Category    *Category `json:"category,omitempty"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	InStock     int       `json:"in_stock" validate:"gte=0"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
