package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Party is anything that holds a balance and can take part in a loan
type Party interface {
	ID() uuid.UUID
	FirstName() string
	LastName() string
	Balance() decimal.Decimal
}

// LendingParty is a party that can extend funds and be paid back
type LendingParty interface {
	Party
	Lend(amount decimal.Decimal) bool
	GetBackMoney(amount decimal.Decimal)
}

// BorrowingParty is a party that can receive funds and repay them
type BorrowingParty interface {
	Party
	Borrow(amount decimal.Decimal) bool
	ReturnMoney(amount decimal.Decimal) bool
}

type identity struct {
	id        uuid.UUID
	firstName string
	lastName  string
}

func newIdentity(firstName, lastName string) identity {
	return identity{
		id:        uuid.New(),
		firstName: firstName,
		lastName:  lastName,
	}
}

func (p identity) ID() uuid.UUID { return p.id }
func (p identity) FirstName() string { return p.firstName }
func (p identity) LastName() string { return p.lastName }

// Lender represents a person who lends money out of their own balance
type Lender struct {
	identity
	balance decimal.Decimal
}

// NewLender creates a new Lender with the given starting balance
func NewLender(firstName, lastName string, balance decimal.Decimal) *Lender {
	return &Lender{
		identity: newIdentity(firstName, lastName),
		balance:  balance,
	}
}

func (l *Lender) Balance() decimal.Decimal {
	return l.balance
}

// Lend takes amount out of the balance. It fails without touching the balance
// when the amount is negative or larger than what the lender has.
func (l *Lender) Lend(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(l.balance) {
		return false
	}

	l.balance = l.balance.Sub(amount)
	return true
}

// GetBackMoney credits a repayment to the lender
func (l *Lender) GetBackMoney(amount decimal.Decimal) {
	if amount.IsNegative() {
		return
	}

	l.balance = l.balance.Add(amount)
}

// Bank is a Lender with no policy of its own
type Bank struct {
	*Lender
}

// NewBank creates a new Bank
func NewBank(name, suffix string, balance decimal.Decimal) *Bank {
	return &Bank{
		Lender: NewLender(name, suffix, balance),
	}
}

// Borrower represents a person who borrows money and pays it back
type Borrower struct {
	identity
	balance decimal.Decimal
}

// NewBorrower creates a new Borrower with the given starting balance
func NewBorrower(firstName, lastName string, balance decimal.Decimal) *Borrower {
	return &Borrower{
		identity: newIdentity(firstName, lastName),
		balance:  balance,
	}
}

func (b *Borrower) Balance() decimal.Decimal {
	return b.balance
}

// Borrow credits borrowed funds. There is no upper limit on how much a
// borrower can receive; only negative amounts are refused.
func (b *Borrower) Borrow(amount decimal.Decimal) bool {
	if amount.IsNegative() {
		return false
	}

	b.balance = b.balance.Add(amount)
	return true
}

// ReturnMoney takes a repayment out of the borrower's balance
func (b *Borrower) ReturnMoney(amount decimal.Decimal) bool {
	if amount.IsNegative() || amount.GreaterThan(b.balance) {
		return false
	}

	b.balance = b.balance.Sub(amount)
	return true
}
