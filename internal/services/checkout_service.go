package services

import (
	"encoding/json"
	"fmt"
	"log"

	"eshop/internal/models"
	"eshop/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// EventPublisher publishes domain events to the message broker.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// CheckoutService converts the contents of one cart into a placed order,
// decrements stock, debits the buyer's balance, and validates shippability.
// The whole sequence runs in one database transaction: it commits entirely or
// not at all.
type CheckoutService struct {
	store    repositories.Store
	mq       EventPublisher
	validate *validator.Validate
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(store repositories.Store, mq EventPublisher, validate *validator.Validate) *CheckoutService {
	return &CheckoutService{
		store:    store,
		mq:       mq,
		validate: validate,
	}
}

// PurchaseCart purchases everything in the cart identified by cartID.
//
// Each cart line contributes exactly one order item and exactly its product's
// unit price to the order total; the line quantity is applied to the stock
// decrement only. The cart and its items are left in place after purchase, and
// there is no idempotency guard: purchasing the same cart twice places two
// orders and debits the balance twice.
func (s *CheckoutService) PurchaseCart(cartID string) (bool, error) {
	var placed *models.Order

	err := s.store.InTransaction(func(tx repositories.Store) error {
		cart, err := tx.Carts().GetByID(cartID)
		if err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("no such cart: %w", ErrNotFound)
			}
			return err
		}

		user, err := tx.Users().GetByID(cart.UserID)
		if err != nil {
			if isRecordNotFound(err) {
				return fmt.Errorf("no such user: %w", ErrNotFound)
			}
			return err
		}

		// An empty cart is legal and produces a zero-item, zero-total order.
		items, err := tx.CartItems().GetAllByCartID(cart.ID)
		if err != nil {
			return err
		}

		order := &models.Order{
			UserID: user.ID,
			Status: models.OrderStatusPlaced,
		}
		var total float64
		for _, ci := range items {
			product := ci.Product
			if product == nil {
				product, err = tx.Products().GetByID(ci.ProductID)
				if err != nil {
					if isRecordNotFound(err) {
						return fmt.Errorf("no such product: %w", ErrNotFound)
					}
					return err
				}
			}
			order.Items = append(order.Items, models.OrderItem{ProductID: product.ID})
			total += product.Price
		}
		order.Total = total

		products := NewProductService(tx.Products(), tx.Categories(), s.validate)
		if err := products.UpdateProductStock(items); err != nil {
			return err
		}

		if err := tx.Orders().Create(order); err != nil {
			return err
		}

		payments := NewPaymentService(tx.Users())
		if err := payments.Pay(user.ID, total); err != nil {
			return err
		}

		if err := NewShippingService().Ship(order); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return false, err
	}

	s.publishOrderPlaced(placed)
	return true, nil
}

// publishOrderPlaced emits an order.placed event after a successful commit.
// Publishing is best-effort: the purchase already committed, so a broker
// failure is only logged.
func (s *CheckoutService) publishOrderPlaced(order *models.Order) {
	if s.mq == nil {
		log.Println("Event publisher is not initialized. Skipping order.placed publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Total,
		"items":   len(order.Items),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order.placed event: %v", err)
		return
	}
	if err := s.mq.Publish("order", "order.placed", body); err != nil {
		log.Printf("Warning: Failed to publish order.placed event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Successfully published order.placed event for order %s", order.ID)
}
