package service

import (
	"github.com/shopspring/decimal"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/internal/repository"
)

// ReferenceScenario returns the built-in demo: John and Vietcombank each lend
// to Peter, who then pays both back in full.
func ReferenceScenario() (*repository.MemoryPartyRepository, *repository.MemoryOperationRepository) {
	parties := &repository.MemoryPartyRepository{
		Parties: []domain.PartyRecord{
			{Handle: "john", Kind: domain.KindLender, FirstName: "John", LastName: "Doe", Balance: decimal.NewFromInt(1000)},
			{Handle: "peter", Kind: domain.KindBorrower, FirstName: "Peter", LastName: "Parker", Balance: decimal.NewFromInt(100)},
			{Handle: "vietcombank", Kind: domain.KindBank, FirstName: "Vietcombank", LastName: "Bank", Balance: decimal.NewFromInt(50000)},
		},
	}

	operations := &repository.MemoryOperationRepository{
		Operations: []domain.Operation{
			{Action: domain.ActionLend, From: "john", To: "peter", Amount: decimal.NewFromInt(100)},
			{Action: domain.ActionLend, From: "vietcombank", To: "peter", Amount: decimal.NewFromInt(10000)},
			{Action: domain.ActionRepay, From: "peter", To: "vietcombank", Amount: decimal.NewFromInt(10000)},
			{Action: domain.ActionRepay, From: "peter", To: "john", Amount: decimal.NewFromInt(100)},
		},
	}

	return parties, operations
}
