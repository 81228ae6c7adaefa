package repository

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/pkg/fileutil"
)

var partyHeaderFields = []string{"handle", "kind", "first_name", "last_name", "balance"}

// CSVPartyRepository implements the PartyRepository interface for CSV files
type CSVPartyRepository struct {
	FilePath string
	logger   *zap.Logger
}

// NewCSVPartyRepository creates a new CSVPartyRepository
func NewCSVPartyRepository(filePath string, logger *zap.Logger) *CSVPartyRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CSVPartyRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

func (r *CSVPartyRepository) GetParties() ([]domain.PartyRecord, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	var columnMap map[string]int
	headerFn := func(header []string) error {
		var err error
		columnMap, err = createHeaderMap(header, partyHeaderFields)
		if err != nil {
			return fmt.Errorf("mapping CSV columns: %w", err)
		}
		return nil
	}

	var parties []domain.PartyRecord
	rowFn := func(line int, row []string) error {
		// Skip if row doesn't have enough fields
		if len(row) <= maxColumn(columnMap) {
			r.logger.Warn("skipping short party row", zap.String("file", r.FilePath), zap.Int("line", line))
			return nil
		}

		kind := domain.PartyKind(strings.ToLower(strings.TrimSpace(row[columnMap["kind"]])))
		if kind != domain.KindLender && kind != domain.KindBorrower && kind != domain.KindBank {
			r.logger.Warn("skipping party with unknown kind",
				zap.String("file", r.FilePath), zap.Int("line", line), zap.String("kind", string(kind)))
			return nil
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(row[columnMap["balance"]]))
		if err != nil {
			r.logger.Warn("skipping party with invalid balance",
				zap.String("file", r.FilePath), zap.Int("line", line), zap.Error(err))
			return nil
		}

		parties = append(parties, domain.PartyRecord{
			Handle:    strings.TrimSpace(row[columnMap["handle"]]),
			Kind:      kind,
			FirstName: strings.TrimSpace(row[columnMap["first_name"]]),
			LastName:  strings.TrimSpace(row[columnMap["last_name"]]),
			Balance:   balance,
		})
		return nil
	}

	if err := reader.Process(headerFn, rowFn); err != nil {
		return nil, fmt.Errorf("reading party roster: %w", err)
	}

	return parties, nil
}
