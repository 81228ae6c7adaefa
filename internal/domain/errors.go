package domain

import "errors"

var (
	// ErrInvalidAmount is returned for zero or negative amounts
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds is returned when the paying party's balance is too low
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrRepaymentExceedsDebt is returned when a repayment is larger than the recorded debt
	ErrRepaymentExceedsDebt = errors.New("repayment exceeds outstanding debt")

	// ErrNoSuchDebt is returned when the borrower owes nothing to anyone
	ErrNoSuchDebt = errors.New("no outstanding debt")
)
