package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tirasundara/loan-ledger/internal/domain"
)

func TestLender(t *testing.T) {
	lender := domain.NewLender("John", "Doe", decimal.NewFromInt(1000))

	assert.Equal(t, "John", lender.FirstName())
	assert.Equal(t, "Doe", lender.LastName())
	assert.True(t, lender.Balance().Equal(decimal.NewFromInt(1000)))

	// Lending the whole balance is allowed
	assert.True(t, lender.Lend(decimal.NewFromInt(1000)))
	assert.True(t, lender.Balance().IsZero())

	// Anything beyond the balance is refused
	assert.False(t, lender.Lend(decimal.NewFromFloat(0.01)))
	assert.True(t, lender.Balance().IsZero())

	lender.GetBackMoney(decimal.NewFromInt(250))
	assert.True(t, lender.Balance().Equal(decimal.NewFromInt(250)))
}

func TestLender_RejectsNegativeAmounts(t *testing.T) {
	lender := domain.NewLender("John", "Doe", decimal.NewFromInt(100))

	assert.False(t, lender.Lend(decimal.NewFromInt(-5)))
	lender.GetBackMoney(decimal.NewFromInt(-5))

	assert.True(t, lender.Balance().Equal(decimal.NewFromInt(100)))
}

func TestBorrower(t *testing.T) {
	borrower := domain.NewBorrower("Peter", "Parker", decimal.NewFromInt(100))

	// Borrowing has no ceiling
	assert.True(t, borrower.Borrow(decimal.NewFromInt(1_000_000)))
	assert.True(t, borrower.Balance().Equal(decimal.NewFromInt(1_000_100)))

	assert.True(t, borrower.ReturnMoney(decimal.NewFromInt(1_000_100)))
	assert.True(t, borrower.Balance().IsZero())

	assert.False(t, borrower.ReturnMoney(decimal.NewFromInt(1)))
	assert.True(t, borrower.Balance().IsZero())

	assert.False(t, borrower.Borrow(decimal.NewFromInt(-1)))
	assert.False(t, borrower.ReturnMoney(decimal.NewFromInt(-1)))
	assert.True(t, borrower.Balance().IsZero())
}

func TestBank_IsALendingParty(t *testing.T) {
	var lender domain.LendingParty = domain.NewBank("Vietcombank", "Bank", decimal.NewFromInt(50000))

	assert.True(t, lender.Lend(decimal.NewFromInt(10000)))
	assert.True(t, lender.Balance().Equal(decimal.NewFromInt(40000)))
	assert.Equal(t, "Vietcombank", lender.FirstName())
}

func TestParties_HaveDistinctIDs(t *testing.T) {
	a := domain.NewBorrower("Peter", "Parker", decimal.Zero)
	b := domain.NewBorrower("Peter", "Parker", decimal.Zero)

	assert.NotEqual(t, a.ID(), b.ID())
}
