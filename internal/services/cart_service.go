package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CartService handles business logic related to carts.
type CartService struct {
	repo     repositories.CartRepository
	userRepo repositories.UserRepository
	validate *validator.Validate
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository, userRepo repositories.UserRepository, validate *validator.Validate) *CartService {
	return &CartService{
		repo:     repo,
		userRepo: userRepo,
		validate: validate,
	}
}

// GetAllCarts retrieves all carts.
func (s *CartService) GetAllCarts() ([]models.Cart, error) {
	return s.repo.GetAll()
}

// GetCartByID retrieves a single cart by its ID.
func (s *CartService) GetCartByID(id string) (*models.Cart, error) {
	cart, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such cart: %w", ErrNotFound)
		}
		return nil, err
	}
	return cart, nil
}

// GetCartByUserID retrieves the cart owned by the given user.
func (s *CartService) GetCartByUserID(userID string) (*models.Cart, error) {
	cart, err := s.repo.GetByUserID(userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no cart for user: %w", ErrNotFound)
		}
		return nil, err
	}
	return cart, nil
}

// CreateCart creates a new cart. The owning user must exist.
func (s *CartService) CreateCart(cart *models.Cart) error {
	if err := validateStruct(s.validate, cart); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(cart.UserID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such user: %w", ErrNotFound)
		}
		return err
	}
	return s.repo.Create(cart)
}

// UpdateCart updates an existing cart's total.
func (s *CartService) UpdateCart(id string, cart *models.Cart) (*models.Cart, error) {
	retrieved, err := s.GetCartByID(id)
	if err != nil {
		return nil, err
	}
	retrieved.Total = cart.Total
	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteCart deletes a cart and its items by the cart's ID.
func (s *CartService) DeleteCart(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("cart does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
