package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// CartItemService handles business logic related to individual cart lines.
type CartItemService struct {
	repo        repositories.CartItemRepository
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewCartItemService creates a new CartItemService.
func NewCartItemService(repo repositories.CartItemRepository, cartRepo repositories.CartRepository, productRepo repositories.ProductRepository, validate *validator.Validate) *CartItemService {
	return &CartItemService{
		repo:        repo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		validate:    validate,
	}
}

// GetAllCartItems retrieves all cart items.
func (s *CartItemService) GetAllCartItems() ([]models.CartItem, error) {
	return s.repo.GetAll()
}

// GetCartItemsByCartID retrieves all items in a cart.
func (s *CartItemService) GetCartItemsByCartID(cartID string) ([]models.CartItem, error) {
	return s.repo.GetAllByCartID(cartID)
}

// GetCartItemByID retrieves a single cart item by its ID.
func (s *CartItemService) GetCartItemByID(id string) (*models.CartItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such cart item: %w", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// CreateCartItem creates a new cart item. Both the cart and the product ids
// must resolve to existing rows.
func (s *CartItemService) CreateCartItem(item *models.CartItem) error {
	if err := validateStruct(s.validate, item); err != nil {
		return err
	}
	if err := s.resolveRefs(item); err != nil {
		return err
	}
	return s.repo.Create(item)
}

// UpdateCartItem updates an existing cart item.
func (s *CartItemService) UpdateCartItem(id string, item *models.CartItem) (*models.CartItem, error) {
	retrieved, err := s.GetCartItemByID(id)
	if err != nil {
		return nil, err
	}

	retrieved.CartID = item.CartID
	retrieved.ProductID = item.ProductID
	retrieved.Product = nil
	retrieved.Quantity = item.Quantity

	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.resolveRefs(retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteCartItem deletes a cart item by its ID.
func (s *CartItemService) DeleteCartItem(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("cart item does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}

// resolveRefs fails closed when the cart or product reference is dangling.
func (s *CartItemService) resolveRefs(item *models.CartItem) error {
	if _, err := s.cartRepo.GetByID(item.CartID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such cart: %w", ErrNotFound)
		}
		return err
	}
	if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such product: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
