package services

import (
	"fmt"

	"eshop/internal/repositories"
)

// PaymentService charges purchases against a user's stored balance. There is
// no idempotency key: paying twice debits twice.
type PaymentService struct {
	userRepo repositories.UserRepository
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(userRepo repositories.UserRepository) *PaymentService {
	return &PaymentService{
		userRepo: userRepo,
	}
}

// Pay debits amount from the user's balance. It fails with ErrNotFound when
// the user does not exist and with ErrInsufficientFunds, leaving the balance
// untouched, when it cannot cover amount. The debit is a single guarded
// UPDATE, so concurrent payments cannot overdraw the balance.
func (s *PaymentService) Pay(userID string, amount float64) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if isRecordNotFound(err) {
			return fmt.Errorf("no such user: %w", ErrNotFound)
		}
		return err
	}
	ok, err := s.userRepo.DebitBalance(userID, amount)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("not enough balance: %w", ErrInsufficientFunds)
	}
	return nil
}
