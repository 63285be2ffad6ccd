package models

import "gorm.io/gorm"

// User represents a registered customer or administrator of the shop.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string  `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Password   string  `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	FirstName  string  `json:"first_name" validate:"required,max=100"`
	LastName   string  `json:"last_name" validate:"required,max=100"`
	Address    string  `json:"address" validate:"required,max=255"`
	Phone      string  `json:"phone" gorm:"uniqueIndex;type:varchar(30)" validate:"required,max=30"`
	Role       string  `json:"role" gorm:"type:varchar(20);default:user" validate:"omitempty,oneof=user admin"`
	Balance    float64 `json:"balance" validate:"gte=0"`
	Cart       *Cart   `json:"cart,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Orders     []Order `json:"orders,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
