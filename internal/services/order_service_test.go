package services_test

import (
	"testing"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByUserID(userID string) ([]models.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderItemRepository is a mock implementation of repositories.OrderItemRepository
type MockOrderItemRepository struct {
	mock.Mock
}

func (m *MockOrderItemRepository) GetAll() ([]models.OrderItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) GetAllByOrderID(orderID string) ([]models.OrderItem, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) GetByID(id string) (*models.OrderItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OrderItem), args.Error(1)
}

func (m *MockOrderItemRepository) Create(item *models.OrderItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockOrderItemRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

const (
	testOrderID = "9d8c7b6a-5f4e-4d3c-8b2a-190807060504"
	testUserID  = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f20314253"
)

func newOrderService(orderRepo *MockOrderRepository, itemRepo *MockOrderItemRepository, userRepo *MockUserRepository, productRepo *MockProductRepository) *services.OrderService {
	return services.NewOrderService(orderRepo, itemRepo, userRepo, productRepo, validator.New())
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockUsers := new(MockUserRepository)
	service := newOrderService(mockOrders, new(MockOrderItemRepository), mockUsers, new(MockProductRepository))

	// Successful creation
	order := &models.Order{UserID: testUserID, Total: 30}
	mockUsers.On("GetByID", testUserID).Return(&models.User{ID: testUserID}, nil).Once()
	mockOrders.On("Create", order).Return(nil).Once()
	err := service.CreateOrder(order)
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
	mockUsers.AssertExpectations(t)

	// Unknown owning user
	order = &models.Order{UserID: testUserID, Total: 30}
	mockUsers.On("GetByID", testUserID).Return(nil, gorm.ErrRecordNotFound).Once()
	err = service.CreateOrder(order)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockUsers.AssertExpectations(t)

	// Missing user reference
	err = service.CreateOrder(&models.Order{Total: 30})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestOrderService_CreateOrderItem(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	mockItems := new(MockOrderItemRepository)
	mockProducts := new(MockProductRepository)
	service := newOrderService(mockOrders, mockItems, new(MockUserRepository), mockProducts)

	// Successful creation
	item := &models.OrderItem{OrderID: testOrderID, ProductID: testProductID}
	mockOrders.On("GetByID", testOrderID).Return(&models.Order{ID: testOrderID, UserID: testUserID}, nil).Once()
	mockProducts.On("GetByID", testProductID).Return(&models.Product{ID: testProductID}, nil).Once()
	mockItems.On("Create", item).Return(nil).Once()
	err := service.CreateOrderItem(item)
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
	mockItems.AssertExpectations(t)

	// An item without an order reference never reaches the repositories
	err = service.CreateOrderItem(&models.OrderItem{ProductID: testProductID})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "OrderID")

	// Unknown order
	item = &models.OrderItem{OrderID: testOrderID, ProductID: testProductID}
	mockOrders.On("GetByID", testOrderID).Return(nil, gorm.ErrRecordNotFound).Once()
	err = service.CreateOrderItem(item)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockOrders.AssertExpectations(t)

	// Unknown product
	item = &models.OrderItem{OrderID: testOrderID, ProductID: testProductID}
	mockOrders.On("GetByID", testOrderID).Return(&models.Order{ID: testOrderID, UserID: testUserID}, nil).Once()
	mockProducts.On("GetByID", testProductID).Return(nil, gorm.ErrRecordNotFound).Once()
	err = service.CreateOrderItem(item)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockOrders.AssertExpectations(t)
	mockProducts.AssertExpectations(t)
}
