package repository_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/internal/repository"
)

func TestCSVOperationRepository_GetOperations(t *testing.T) {
	repo := repository.NewCSVOperationRepository("../../test/testdata/operations.csv", nil)

	ops, err := repo.GetOperations()

	require.NoError(t, err)
	require.Len(t, ops, 4)

	assert.Equal(t, domain.Operation{
		Action: domain.ActionLend,
		From:   "john",
		To:     "peter",
		Amount: ops[0].Amount,
	}, ops[0])
	assert.True(t, ops[0].Amount.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, domain.ActionRepay, ops[3].Action)
	assert.Equal(t, "peter", ops[3].From)
	assert.Equal(t, "john", ops[3].To)
}

func TestCSVOperationRepository_SkipsMalformedRows(t *testing.T) {
	repo := repository.NewCSVOperationRepository("../../test/testdata/operations_malformed.csv", nil)

	ops, err := repo.GetOperations()

	require.NoError(t, err)
	require.Len(t, ops, 2)
	assert.Equal(t, domain.ActionLend, ops[0].Action)
	assert.Equal(t, domain.ActionRepay, ops[1].Action)
	assert.True(t, ops[1].Amount.Equal(decimal.NewFromInt(40)))
}
