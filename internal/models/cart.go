package models

import "gorm.io/gorm"

// Cart is the per-user staging area of selected products before purchase.
// Each user owns at most one cart. Total is caller-supplied, not derived
// from the items.
type Cart struct {
	ID         string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required,uuid"`
	Total      float64    `json:"total" validate:"gte=0"`
	Items      []CartItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CartItem is one product+quantity line within a cart.
type CartItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CartID     string   `json:"cart_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	ProductID  string   `json:"product_id" gorm:"type:varchar(36)" validate:"required,uuid"`
	Product    *Product `json:"product,omitempty"`
	Quantity   int      `json:"quantity" validate:"required,gt=0"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
