package services_test

import (
	"testing"

	"eshop/internal/models"
	"eshop/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestShippingService_Ship(t *testing.T) {
	service := services.NewShippingService()

	orderWithItems := func(n int) *models.Order {
		order := &models.Order{ID: "order-1"}
		for i := 0; i < n; i++ {
			order.Items = append(order.Items, models.OrderItem{ProductID: "prod-1"})
		}
		return order
	}

	assert.NoError(t, service.Ship(orderWithItems(0)))
	assert.NoError(t, service.Ship(orderWithItems(services.MaxShippableItems)))

	err := service.Ship(orderWithItems(services.MaxShippableItems + 1))
	assert.ErrorIs(t, err, services.ErrTooManyItems)
	assert.Contains(t, err.Error(), "we cannot serve more than 10 products")
}
