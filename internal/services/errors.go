package services

import "errors"

// Sentinel errors for the business failure taxonomy. Services wrap these with
// fmt.Errorf("...: %w", Err...) so handlers can map them with errors.Is.
var (
	// ErrNotFound indicates an entity lookup by ID (or unique key) found nothing.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates an entity failed constraint validation before persistence.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a unique-key collision (SKU, username, phone).
	ErrConflict = errors.New("conflict")

	// ErrInsufficientFunds indicates the user's balance cannot cover a payment.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrTooManyItems indicates an order exceeds the shippable item limit.
	ErrTooManyItems = errors.New("too many items")

	// ErrOutOfStock indicates a product's stock cannot cover a requested quantity.
	ErrOutOfStock = errors.New("out of stock")
)
