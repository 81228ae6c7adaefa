package domain

import "github.com/shopspring/decimal"

// PartyKind represents the role a party plays in a scenario
type PartyKind string

// Party kinds
const (
	KindLender   PartyKind = "lender"
	KindBorrower PartyKind = "borrower"
	KindBank     PartyKind = "bank"
)

// Action represents a ledger operation in a scenario
type Action string

// Ledger actions
const (
	ActionLend  Action = "lend"
	ActionRepay Action = "repay"
)

// PartyRecord is one row of a party roster
type PartyRecord struct {
	Handle    string          `json:"handle"`
	Kind      PartyKind       `json:"kind"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Balance   decimal.Decimal `json:"balance"`
}

// Operation is one step of a scenario. From is the paying side: the lender
// for a lend, the borrower for a repay.
type Operation struct {
	Action Action          `json:"action"`
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

// OperationOutcome records how the ledger answered a single operation
type OperationOutcome struct {
	Operation Operation `json:"operation"`
	FromName  string    `json:"fromName"`
	ToName    string    `json:"toName"`
	OK        bool      `json:"ok"`
	Reason    string    `json:"reason,omitempty"`
}

// PartyBalance is a party's balance at the end of a scenario
type PartyBalance struct {
	Handle    string          `json:"handle"`
	Kind      PartyKind       `json:"kind"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Balance   decimal.Decimal `json:"balance"`
}

// ScenarioResult contains the result of replaying a scenario through a ledger
type ScenarioResult struct {
	Outcomes []OperationOutcome `json:"outcomes"`
	Balances []PartyBalance     `json:"balances"`
	Loans    []Loan             `json:"loans"`
	Summary  string             `json:"summary"`
}
