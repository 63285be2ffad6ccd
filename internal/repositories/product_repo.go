package repositories

import (
	"eshop/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	// GetAllOrderedByUser returns the products appearing in the user's orders.
	GetAllOrderedByUser(userID string) ([]models.Product, error)
	// GetAllInCartByUser returns the products currently in the user's cart.
	GetAllInCartByUser(userID string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetBySKU(sku string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
	// DecrementStock atomically subtracts quantity from the product's stock.
	// It returns false (and no error) when the stock cannot cover quantity.
	DecrementStock(id string, quantity int) (bool, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
}
