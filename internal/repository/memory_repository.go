package repository

import "github.com/tirasundara/loan-ledger/internal/domain"

// MemoryPartyRepository serves a fixed party roster
type MemoryPartyRepository struct {
	Parties []domain.PartyRecord
}

func (r *MemoryPartyRepository) GetParties() ([]domain.PartyRecord, error) {
	return append([]domain.PartyRecord(nil), r.Parties...), nil
}

// MemoryOperationRepository serves a fixed list of operations
type MemoryOperationRepository struct {
	Operations []domain.Operation
}

func (r *MemoryOperationRepository) GetOperations() ([]domain.Operation, error) {
	return append([]domain.Operation(nil), r.Operations...), nil
}
