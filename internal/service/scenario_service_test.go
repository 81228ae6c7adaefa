package service_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/internal/repository"
	"github.com/tirasundara/loan-ledger/internal/service"
)

type MockPartyRepository struct {
	parties []domain.PartyRecord
	err     error
}

func (m *MockPartyRepository) GetParties() ([]domain.PartyRecord, error) {
	return m.parties, m.err
}

type MockOperationRepository struct {
	operations []domain.Operation
	err        error
}

func (m *MockOperationRepository) GetOperations() ([]domain.Operation, error) {
	return m.operations, m.err
}

func party(handle string, kind domain.PartyKind, first string, balance int64) domain.PartyRecord {
	return domain.PartyRecord{
		Handle:    handle,
		Kind:      kind,
		FirstName: first,
		LastName:  "Test",
		Balance:   decimal.NewFromInt(balance),
	}
}

func op(action domain.Action, from, to string, amount int64) domain.Operation {
	return domain.Operation{Action: action, From: from, To: to, Amount: decimal.NewFromInt(amount)}
}

func balanceOf(t *testing.T, result domain.ScenarioResult, handle string) decimal.Decimal {
	t.Helper()
	for _, b := range result.Balances {
		if b.Handle == handle {
			return b.Balance
		}
	}
	t.Fatalf("no balance for %q", handle)
	return decimal.Zero
}

func TestScenarioService_ReferenceScenario(t *testing.T) {
	parties, operations := service.ReferenceScenario()
	svc := service.NewScenarioService(parties, operations, nil)

	result, err := svc.Run()

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 4)
	for _, outcome := range result.Outcomes {
		assert.Truef(t, outcome.OK, "expected %s %s -> %s to succeed", outcome.Operation.Action, outcome.Operation.From, outcome.Operation.To)
	}

	assert.True(t, balanceOf(t, result, "john").Equal(decimal.NewFromInt(1000)))
	assert.True(t, balanceOf(t, result, "peter").Equal(decimal.NewFromInt(100)))
	assert.True(t, balanceOf(t, result, "vietcombank").Equal(decimal.NewFromInt(50000)))
	assert.Empty(t, result.Loans)
	assert.Equal(t, "", result.Summary)
}

func TestScenarioService_CSVScenario(t *testing.T) {
	svc := service.NewScenarioService(
		repository.NewCSVPartyRepository("../../test/testdata/parties.csv", nil),
		repository.NewCSVOperationRepository("../../test/testdata/operations.csv", nil),
		nil,
	)

	result, err := svc.Run()

	require.NoError(t, err)
	require.Len(t, result.Balances, 3)
	assert.Equal(t, "John", result.Balances[0].FirstName)
	assert.Equal(t, "Vietcombank", result.Balances[1].FirstName)
	assert.Equal(t, "Peter", result.Balances[2].FirstName)
	assert.Equal(t, "", result.Summary)
}

func TestScenarioService_RecordsRefusals(t *testing.T) {
	parties := &MockPartyRepository{parties: []domain.PartyRecord{
		party("john", domain.KindLender, "John", 100),
		party("peter", domain.KindBorrower, "Peter", 0),
	}}
	operations := &MockOperationRepository{operations: []domain.Operation{
		op(domain.ActionRepay, "peter", "john", 10),
		op(domain.ActionLend, "john", "peter", 500),
		op(domain.ActionLend, "john", "peter", 60),
		op(domain.ActionRepay, "peter", "john", 70),
		op(domain.ActionLend, "john", "peter", 0),
	}}

	result, err := service.NewScenarioService(parties, operations, nil).Run()

	require.NoError(t, err)
	require.Len(t, result.Outcomes, 5)

	assert.False(t, result.Outcomes[0].OK)
	assert.Equal(t, domain.ErrNoSuchDebt.Error(), result.Outcomes[0].Reason)

	assert.False(t, result.Outcomes[1].OK)
	assert.Equal(t, domain.ErrInsufficientFunds.Error(), result.Outcomes[1].Reason)

	assert.True(t, result.Outcomes[2].OK)
	assert.Empty(t, result.Outcomes[2].Reason)
	assert.Equal(t, "John", result.Outcomes[2].FromName)
	assert.Equal(t, "Peter", result.Outcomes[2].ToName)

	assert.False(t, result.Outcomes[3].OK)
	assert.Equal(t, domain.ErrRepaymentExceedsDebt.Error(), result.Outcomes[3].Reason)

	assert.False(t, result.Outcomes[4].OK)
	assert.Equal(t, domain.ErrInvalidAmount.Error(), result.Outcomes[4].Reason)

	assert.Equal(t, "Peter owes John a total of 60", result.Summary)
	require.Len(t, result.Loans, 1)
	assert.True(t, result.Loans[0].Amount.Equal(decimal.NewFromInt(60)))
}

func TestScenarioService_UnknownParty(t *testing.T) {
	parties := &MockPartyRepository{parties: []domain.PartyRecord{
		party("john", domain.KindLender, "John", 100),
	}}
	operations := &MockOperationRepository{operations: []domain.Operation{
		op(domain.ActionLend, "john", "nobody", 10),
	}}

	_, err := service.NewScenarioService(parties, operations, nil).Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nobody")
	assert.Contains(t, err.Error(), "operation 1")
}

func TestScenarioService_WrongRole(t *testing.T) {
	parties := &MockPartyRepository{parties: []domain.PartyRecord{
		party("john", domain.KindLender, "John", 100),
		party("bank", domain.KindBank, "Vietcombank", 100),
	}}
	operations := &MockOperationRepository{operations: []domain.Operation{
		op(domain.ActionLend, "john", "bank", 10),
	}}

	_, err := service.NewScenarioService(parties, operations, nil).Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot play this role")
}

func TestScenarioService_DuplicateHandle(t *testing.T) {
	parties := &MockPartyRepository{parties: []domain.PartyRecord{
		party("john", domain.KindLender, "John", 100),
		party("john", domain.KindBorrower, "John", 100),
	}}

	_, err := service.NewScenarioService(parties, &MockOperationRepository{}, nil).Run()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate party handle")
}

func TestScenarioService_RepositoryErrors(t *testing.T) {
	boom := errors.New("boom")

	_, err := service.NewScenarioService(&MockPartyRepository{err: boom}, &MockOperationRepository{}, nil).Run()
	assert.ErrorIs(t, err, boom)

	_, err = service.NewScenarioService(&MockPartyRepository{}, &MockOperationRepository{err: boom}, nil).Run()
	assert.ErrorIs(t, err, boom)
}
