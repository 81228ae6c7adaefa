package domain

// PartyRepository defines the interface for accessing a party roster
type PartyRepository interface {
	// GetParties returns the roster in the order it was declared
	GetParties() ([]PartyRecord, error)
}

// OperationRepository defines the interface for accessing scenario operations
type OperationRepository interface {
	// GetOperations returns operations in the order they must be applied
	GetOperations() ([]Operation, error)
}
