package services_test

import (
	"testing"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPaymentService_Pay(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewPaymentService(mockRepo)

	user := &models.User{ID: "user-1", Balance: 100}

	// Successful payment
	mockRepo.On("GetByID", "user-1").Return(user, nil).Once()
	mockRepo.On("DebitBalance", "user-1", 30.0).Return(true, nil).Once()
	err := service.Pay("user-1", 30)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// Balance cannot cover the amount
	mockRepo.On("GetByID", "user-1").Return(user, nil).Once()
	mockRepo.On("DebitBalance", "user-1", 500.0).Return(false, nil).Once()
	err = service.Pay("user-1", 500)
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "not enough balance")
	mockRepo.AssertExpectations(t)

	// Unknown user
	mockRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound).Once()
	err = service.Pay("missing", 10)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
