package repositories

import (
	"eshop/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	GetAll() ([]models.Cart, error)
	GetByID(id string) (*models.Cart, error)
	GetByUserID(userID string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Update(cart *models.Cart) error
	Delete(id string) error
}

// CartItemRepository defines the interface for cart item data access.
type CartItemRepository interface {
	GetAll() ([]models.CartItem, error)
	GetAllByCartID(cartID string) ([]models.CartItem, error)
	GetByID(id string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(id string) error
}
