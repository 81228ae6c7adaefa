package ledger

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tirasundara/loan-ledger/internal/domain"
)

// entry is a single outstanding debt. seq orders entries of the same borrower
// by creation.
type entry struct {
	borrowerName string
	lenderName   string
	amount       decimal.Decimal
	seq          uint64
}

// borrowerState tracks when a borrower entered the ledger and how many
// entries it still has
type borrowerState struct {
	seq     uint64
	entries int
}

// Ledger records who owes whom how much and moves money between parties.
// It never owns the parties, only the debt table.
type Ledger struct {
	mu        sync.Mutex
	debts     map[domain.DebtKey]*entry
	borrowers map[uuid.UUID]*borrowerState
	seq       uint64
	logger    *zap.Logger
}

// Option configures a Ledger
type Option func(*Ledger)

// WithLogger sets the logger used to report ledger activity
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates an empty Ledger
func New(opts ...Option) *Ledger {
	l := &Ledger{
		debts:     make(map[domain.DebtKey]*entry),
		borrowers: make(map[uuid.UUID]*borrowerState),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LendMoney moves amount from lender to borrower and records the debt.
// It reports false when nothing was changed.
func (l *Ledger) LendMoney(lender domain.LendingParty, borrower domain.BorrowingParty, amount decimal.Decimal) bool {
	return l.Lend(lender, borrower, amount) == nil
}

// RepayMoney moves amount from borrower back to lender and settles that much
// of the recorded debt. It reports false when nothing was changed.
func (l *Ledger) RepayMoney(borrower domain.BorrowingParty, lender domain.LendingParty, amount decimal.Decimal) bool {
	return l.Repay(borrower, lender, amount) == nil
}

// Lend is LendMoney with the reason for a refusal
func (l *Ledger) Lend(lender domain.LendingParty, borrower domain.BorrowingParty, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return l.reject("lend", lender.FirstName(), borrower.FirstName(), amount, domain.ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !lender.Lend(amount) {
		return l.reject("lend", lender.FirstName(), borrower.FirstName(), amount, domain.ErrInsufficientFunds)
	}

	key := domain.DebtKey{BorrowerID: borrower.ID(), LenderID: lender.ID()}

	e, ok := l.debts[key]
	if !ok {
		bs, found := l.borrowers[borrower.ID()]
		if !found {
			bs = &borrowerState{seq: l.nextSeq()}
			l.borrowers[borrower.ID()] = bs
		}
		bs.entries++

		e = &entry{
			borrowerName: borrower.FirstName(),
			lenderName:   lender.FirstName(),
			amount:       decimal.Zero,
			seq:          l.nextSeq(),
		}
		l.debts[key] = e
	}

	e.amount = e.amount.Add(amount)
	borrower.Borrow(amount)

	l.logger.Debug("loan recorded",
		zap.String("lender", lender.FirstName()),
		zap.String("borrower", borrower.FirstName()),
		zap.Stringer("amount", amount),
		zap.Stringer("outstanding", e.amount),
	)

	return nil
}

// Repay is RepayMoney with the reason for a refusal. The recorded debt is
// checked before the borrower's balance.
func (l *Ledger) Repay(borrower domain.BorrowingParty, lender domain.LendingParty, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return l.reject("repay", borrower.FirstName(), lender.FirstName(), amount, domain.ErrInvalidAmount)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bs, ok := l.borrowers[borrower.ID()]
	if !ok {
		return l.reject("repay", borrower.FirstName(), lender.FirstName(), amount, domain.ErrNoSuchDebt)
	}

	key := domain.DebtKey{BorrowerID: borrower.ID(), LenderID: lender.ID()}

	currentDebt := decimal.Zero
	e, ok := l.debts[key]
	if ok {
		currentDebt = e.amount
	}

	if amount.GreaterThan(currentDebt) {
		return l.reject("repay", borrower.FirstName(), lender.FirstName(), amount, domain.ErrRepaymentExceedsDebt)
	}

	if !borrower.ReturnMoney(amount) {
		return l.reject("repay", borrower.FirstName(), lender.FirstName(), amount, domain.ErrInsufficientFunds)
	}

	lender.GetBackMoney(amount)
	e.amount = e.amount.Sub(amount)

	l.logger.Debug("repayment recorded",
		zap.String("borrower", borrower.FirstName()),
		zap.String("lender", lender.FirstName()),
		zap.Stringer("amount", amount),
		zap.Stringer("outstanding", e.amount),
	)

	if e.amount.IsZero() {
		delete(l.debts, key)

		bs.entries--
		if bs.entries == 0 {
			delete(l.borrowers, borrower.ID())
		}
	}

	return nil
}

// Debt returns what borrowerID owes lenderID, zero if nothing
func (l *Ledger) Debt(borrowerID, lenderID uuid.UUID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.debts[domain.DebtKey{BorrowerID: borrowerID, LenderID: lenderID}]
	if !ok {
		return decimal.Zero
	}

	return e.amount
}

// HasBorrower reports whether the borrower owes anything to anyone
func (l *Ledger) HasBorrower(borrowerID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.borrowers[borrowerID]
	return ok
}

// Loans returns all outstanding debts. Borrowers come in the order they
// entered the ledger, and each borrower's lenders in the order the debt was
// first recorded.
func (l *Ledger) Loans() []domain.Loan {
	l.mu.Lock()
	defer l.mu.Unlock()

	type ordered struct {
		key domain.DebtKey
		e   *entry
		bs  *borrowerState
	}

	rows := make([]ordered, 0, len(l.debts))
	for key, e := range l.debts {
		rows = append(rows, ordered{key: key, e: e, bs: l.borrowers[key.BorrowerID]})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].bs.seq != rows[j].bs.seq {
			return rows[i].bs.seq < rows[j].bs.seq
		}
		return rows[i].e.seq < rows[j].e.seq
	})

	loans := make([]domain.Loan, 0, len(rows))
	for _, row := range rows {
		loans = append(loans, domain.Loan{
			BorrowerID:   row.key.BorrowerID,
			BorrowerName: row.e.borrowerName,
			LenderID:     row.key.LenderID,
			LenderName:   row.e.lenderName,
			Amount:       row.e.amount,
		})
	}

	return loans
}

// GetLoans renders outstanding debts one per line, e.g.
// "Peter owes John a total of 100". An empty ledger gives "".
func (l *Ledger) GetLoans() string {
	var sb strings.Builder

	for _, loan := range l.Loans() {
		fmt.Fprintf(&sb, "%s owes %s a total of %s\n", loan.BorrowerName, loan.LenderName, loan.Amount)
	}

	return strings.TrimSpace(sb.String())
}

func (l *Ledger) nextSeq() uint64 {
	l.seq++
	return l.seq
}

func (l *Ledger) reject(op, from, to string, amount decimal.Decimal, reason error) error {
	l.logger.Info("ledger operation refused",
		zap.String("op", op),
		zap.String("from", from),
		zap.String("to", to),
		zap.Stringer("amount", amount),
		zap.Error(reason),
	)

	return fmt.Errorf("%s %s from %s to %s: %w", op, amount, from, to, reason)
}
