package repositories

import "eshop/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByPhone(phone string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	// DebitBalance atomically subtracts amount from the user's balance.
	// It returns false (and no error) when the balance cannot cover amount.
	DebitBalance(id string, amount float64) (bool, error)
}
