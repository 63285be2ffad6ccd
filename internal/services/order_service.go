package services

import (
	"fmt"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// OrderService handles business logic related to orders and their items.
type OrderService struct {
	repo        repositories.OrderRepository
	itemRepo    repositories.OrderItemRepository
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repositories.OrderRepository, itemRepo repositories.OrderItemRepository, userRepo repositories.UserRepository, productRepo repositories.ProductRepository, validate *validator.Validate) *OrderService {
	return &OrderService{
		repo:        repo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		validate:    validate,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.repo.GetAll()
}

// GetOrdersByUserID retrieves all orders belonging to a user.
func (s *OrderService) GetOrdersByUserID(userID string) ([]models.Order, error) {
	return s.repo.GetAllByUserID(userID)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such order: %w", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

// CreateOrder persists an order together with any items attached to it. The
// owning user must exist.
func (s *OrderService) CreateOrder(order *models.Order) error {
	if err := validateStruct(s.validate, order); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(order.UserID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such user: %w", ErrNotFound)
		}
		return err
	}
	return s.repo.Create(order)
}

// UpdateOrder updates an existing order's total and status.
func (s *OrderService) UpdateOrder(id string, order *models.Order) (*models.Order, error) {
	retrieved, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	retrieved.Total = order.Total
	if order.Status != "" {
		retrieved.Status = order.Status
	}
	if err := validateStruct(s.validate, retrieved); err != nil {
		return nil, err
	}
	if err := s.repo.Update(retrieved); err != nil {
		return nil, err
	}
	return retrieved, nil
}

// DeleteOrder deletes an order and its items by the order's ID.
func (s *OrderService) DeleteOrder(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("order does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}

// GetAllOrderItems retrieves all order items.
func (s *OrderService) GetAllOrderItems() ([]models.OrderItem, error) {
	return s.itemRepo.GetAll()
}

// GetOrderItemsByOrderID retrieves all items belonging to an order.
func (s *OrderService) GetOrderItemsByOrderID(orderID string) ([]models.OrderItem, error) {
	return s.itemRepo.GetAllByOrderID(orderID)
}

// GetOrderItemByID retrieves a single order item by its ID.
func (s *OrderService) GetOrderItemByID(id string) (*models.OrderItem, error) {
	item, err := s.itemRepo.GetByID(id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, fmt.Errorf("no such order item: %w", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

// CreateOrderItem creates a new order item. Both the order and the product ids
// must resolve to existing rows.
func (s *OrderService) CreateOrderItem(item *models.OrderItem) error {
	if err := validateStruct(s.validate, item); err != nil {
		return err
	}
	if _, err := s.GetOrderByID(item.OrderID); err != nil {
		return err
	}
	if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such product: %w", ErrNotFound)
		}
		return err
	}
	return s.itemRepo.Create(item)
}

// DeleteOrderItem deletes an order item by its ID.
func (s *OrderService) DeleteOrderItem(id string) error {
	if err := s.itemRepo.Delete(id); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("order item does not exist: %w", ErrNotFound)
		}
		return err
	}
	return nil
}
