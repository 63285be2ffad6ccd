package services

import (
	"fmt"

	"eshop/internal/models"
)

// MaxShippableItems is the most order items a single shipment can carry.
const MaxShippableItems = 10

// ShippingService validates that an order can be shipped. There is no carrier
// integration; this is a capacity check only.
type ShippingService struct{}

// NewShippingService creates a new ShippingService.
func NewShippingService() *ShippingService {
	return &ShippingService{}
}

// Ship fails with ErrTooManyItems when the order carries more items than a
// single shipment allows. Otherwise it is a no-op.
func (s *ShippingService) Ship(order *models.Order) error {
	if len(order.Items) > MaxShippableItems {
		return fmt.Errorf("we cannot serve more than %d products at this time: %w", MaxShippableItems, ErrTooManyItems)
	}
	return nil
}
