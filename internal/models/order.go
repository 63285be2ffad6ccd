package models

import "gorm.io/gorm"

// OrderStatusPlaced is the status assigned to orders created by checkout.
const OrderStatusPlaced = "placed"

// Order is the persisted record of a completed purchase for a user.
type Order struct {
	ID         string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string      `json:"user_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Total      float64     `json:"total" validate:"gte=0"`
	Status     string      `json:"status" gorm:"type:varchar(20)"`
	Items      []OrderItem `json:"items,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	gorm.Model             // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OrderItem is one purchased product line within an order. There is no
// quantity field: each cart line contributes exactly one row.
type OrderItem struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OrderID    string   `json:"order_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	ProductID  string   `json:"product_id" gorm:"type:varchar(36)" validate:"required,uuid"`
	Product    *Product `json:"product,omitempty"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
