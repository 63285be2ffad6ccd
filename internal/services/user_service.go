package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// UserService handles business logic related to user accounts.
type UserService struct {
	repo     repositories.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository, validate *validator.Validate) *UserService {
	return &UserService{
		repo:     repo,
		validate: validate,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such user: %w", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// CreateUser creates a new user. Username and phone must be unused.
func (s *UserService) CreateUser(user *models.User) error {
	if err := validateStruct(s.validate, user); err != nil {
		return err
	}
	if existing, err := s.repo.GetByUsername(user.Username); err == nil && existing != nil {
		return fmt.Errorf("username '%s' already taken: %w", user.Username, ErrConflict)
	}
	if existing, err := s.repo.GetByPhone(user.Phone); err == nil && existing != nil {
		return fmt.Errorf("phone '%s' already registered: %w", user.Phone, ErrConflict)
	}
	return s.repo.Create(user)
}

// UpdateUser updates an existing user. Username and phone uniqueness is
// re-checked against other users.
func (s *UserService) UpdateUser(id string, user *models.User) (*models.User, error) {
	retrieved, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByUsername(user.Username); err == nil && existing != nil && existing.ID != id {
		return nil, fmt.Errorf("username '%s' already taken: %w", user.Username, ErrConflict)
	}
	if existing, err := s.repo.GetByPhone(user.Phone); err == nil && existing != nil && existing.ID != id {
		return nil, fmt.Errorf("phone '%s' already registered: %w", user.Phone, ErrConflict)
	}

	retrieved.Username = user.Username
	retrieved.FirstName = user.FirstName
	retrieved.LastName = user.LastName
	retrieved.Address = user.Address
	retrieved.Phone = user.Phone
	if user.Role != "" {
		retrieved.Role = user.Role
	}
	retrieved.Balance = user.Balance

	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteUser deletes a user by their ID.
func (s *UserService) DeleteUser(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("user does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
