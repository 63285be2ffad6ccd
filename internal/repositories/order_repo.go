package repositories

import (
	"eshop/internal/models"
)

// OrderRepository defines the interface for order data access. Creating an
// order persists its items as well.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllByUserID(userID string) ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id string) error
}

// OrderItemRepository defines the interface for order item data access.
type OrderItemRepository interface {
	GetAll() ([]models.OrderItem, error)
	GetAllByOrderID(orderID string) ([]models.OrderItem, error)
	GetByID(id string) (*models.OrderItem, error)
	Create(item *models.OrderItem) error
	Delete(id string) error
}
