package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/internal/ledger"
)

var (
	errUnknownParty = errors.New("unknown party")
	errWrongRole    = errors.New("party cannot play this role")
)

// refusalReasons are the ledger errors that end an operation without
// failing the scenario
var refusalReasons = []error{
	domain.ErrInvalidAmount,
	domain.ErrInsufficientFunds,
	domain.ErrRepaymentExceedsDebt,
	domain.ErrNoSuchDebt,
}

// participant is a roster entry bound to the party value built for it
type participant struct {
	party    domain.Party
	lender   domain.LendingParty
	borrower domain.BorrowingParty
}

// ScenarioService replays a party roster and a list of operations through a
// fresh ledger
type ScenarioService struct {
	partyRepo     domain.PartyRepository
	operationRepo domain.OperationRepository
	logger        *zap.Logger
}

// NewScenarioService creates a new ScenarioService
func NewScenarioService(
	partyRepo domain.PartyRepository,
	operationRepo domain.OperationRepository,
	logger *zap.Logger,
) *ScenarioService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ScenarioService{
		partyRepo:     partyRepo,
		operationRepo: operationRepo,
		logger:        logger,
	}
}

// Run applies every operation in order. A refused lend or repay is recorded
// in the result; an operation naming an unknown party or a party in the
// wrong role aborts the run.
func (s *ScenarioService) Run() (domain.ScenarioResult, error) {
	records, err := s.partyRepo.GetParties()
	if err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("fetching parties: %w", err)
	}

	participants, err := buildParticipants(records)
	if err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("building parties: %w", err)
	}

	ops, err := s.operationRepo.GetOperations()
	if err != nil {
		return domain.ScenarioResult{}, fmt.Errorf("fetching operations: %w", err)
	}

	s.logger.Info("running scenario", zap.Int("parties", len(records)), zap.Int("operations", len(ops)))

	l := ledger.New(ledger.WithLogger(s.logger))

	outcomes := make([]domain.OperationOutcome, 0, len(ops))
	for i, op := range ops {
		outcome, err := s.apply(l, participants, op)
		if err != nil {
			return domain.ScenarioResult{}, fmt.Errorf("operation %d (%s %s -> %s): %w", i+1, op.Action, op.From, op.To, err)
		}
		outcomes = append(outcomes, outcome)
	}

	balances := make([]domain.PartyBalance, 0, len(records))
	for _, record := range records {
		p := participants[record.Handle]
		balances = append(balances, domain.PartyBalance{
			Handle:    record.Handle,
			Kind:      record.Kind,
			FirstName: p.party.FirstName(),
			LastName:  p.party.LastName(),
			Balance:   p.party.Balance(),
		})
	}

	return domain.ScenarioResult{
		Outcomes: outcomes,
		Balances: balances,
		Loans:    l.Loans(),
		Summary:  l.GetLoans(),
	}, nil
}

func (s *ScenarioService) apply(l *ledger.Ledger, participants map[string]*participant, op domain.Operation) (domain.OperationOutcome, error) {
	from, ok := participants[op.From]
	if !ok {
		return domain.OperationOutcome{}, fmt.Errorf("%w: %q", errUnknownParty, op.From)
	}

	to, ok := participants[op.To]
	if !ok {
		return domain.OperationOutcome{}, fmt.Errorf("%w: %q", errUnknownParty, op.To)
	}

	var err error
	switch op.Action {
	case domain.ActionLend:
		if from.lender == nil || to.borrower == nil {
			return domain.OperationOutcome{}, fmt.Errorf("%w: lend needs a lender and a borrower", errWrongRole)
		}
		err = l.Lend(from.lender, to.borrower, op.Amount)

	case domain.ActionRepay:
		if from.borrower == nil || to.lender == nil {
			return domain.OperationOutcome{}, fmt.Errorf("%w: repay needs a borrower and a lender", errWrongRole)
		}
		err = l.Repay(from.borrower, to.lender, op.Amount)

	default:
		return domain.OperationOutcome{}, fmt.Errorf("unsupported action %q", op.Action)
	}

	outcome := domain.OperationOutcome{
		Operation: op,
		FromName:  from.party.FirstName(),
		ToName:    to.party.FirstName(),
		OK:        err == nil,
	}

	if err != nil {
		reason, refused := refusalReason(err)
		if !refused {
			return domain.OperationOutcome{}, err
		}
		outcome.Reason = reason
	}

	return outcome, nil
}

func refusalReason(err error) (string, bool) {
	for _, reason := range refusalReasons {
		if errors.Is(err, reason) {
			return reason.Error(), true
		}
	}
	return "", false
}

func buildParticipants(records []domain.PartyRecord) (map[string]*participant, error) {
	participants := make(map[string]*participant, len(records))

	for _, record := range records {
		if record.Handle == "" {
			return nil, fmt.Errorf("party %s %s has no handle", record.FirstName, record.LastName)
		}
		if _, dup := participants[record.Handle]; dup {
			return nil, fmt.Errorf("duplicate party handle %q", record.Handle)
		}

		p := &participant{}
		switch record.Kind {
		case domain.KindLender:
			lender := domain.NewLender(record.FirstName, record.LastName, record.Balance)
			p.party, p.lender = lender, lender
		case domain.KindBank:
			bank := domain.NewBank(record.FirstName, record.LastName, record.Balance)
			p.party, p.lender = bank, bank
		case domain.KindBorrower:
			borrower := domain.NewBorrower(record.FirstName, record.LastName, record.Balance)
			p.party, p.borrower = borrower, borrower
		default:
			return nil, fmt.Errorf("party %q has unsupported kind %q", record.Handle, record.Kind)
		}

		participants[record.Handle] = p
	}

	return participants, nil
}
