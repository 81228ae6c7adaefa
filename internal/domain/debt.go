package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtKey identifies the debt a borrower owes a single lender
type DebtKey struct {
	BorrowerID uuid.UUID
	LenderID   uuid.UUID
}

// Loan is a read-only view of one outstanding debt entry
type Loan struct {
	BorrowerID   uuid.UUID       `json:"borrowerId"`
	BorrowerName string          `json:"borrower"`
	LenderID     uuid.UUID       `json:"lenderId"`
	LenderName   string          `json:"lender"`
	Amount       decimal.Decimal `json:"amount"`
}
