package repository

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/pkg/fileutil"
)

var operationHeaderFields = []string{"action", "from", "to", "amount"}

// CSVOperationRepository implements the OperationRepository interface for CSV files
type CSVOperationRepository struct {
	FilePath string
	logger   *zap.Logger
}

// NewCSVOperationRepository creates a new CSVOperationRepository
func NewCSVOperationRepository(filePath string, logger *zap.Logger) *CSVOperationRepository {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CSVOperationRepository{
		FilePath: filePath,
		logger:   logger,
	}
}

// GetOperations reads operations in file order. Malformed rows are logged
// and skipped so the rest of the scenario still runs.
func (r *CSVOperationRepository) GetOperations() ([]domain.Operation, error) {
	reader := fileutil.NewCSVReader(r.FilePath)

	var columnMap map[string]int
	headerFn := func(header []string) error {
		var err error
		columnMap, err = createHeaderMap(header, operationHeaderFields)
		if err != nil {
			return fmt.Errorf("mapping CSV columns: %w", err)
		}
		return nil
	}

	var ops []domain.Operation
	rowFn := func(line int, row []string) error {
		if len(row) <= maxColumn(columnMap) {
			r.logger.Warn("skipping short operation row", zap.String("file", r.FilePath), zap.Int("line", line))
			return nil
		}

		action := domain.Action(strings.ToLower(strings.TrimSpace(row[columnMap["action"]])))
		if action != domain.ActionLend && action != domain.ActionRepay {
			r.logger.Warn("skipping operation with unknown action",
				zap.String("file", r.FilePath), zap.Int("line", line), zap.String("action", string(action)))
			return nil
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[columnMap["amount"]]))
		if err != nil {
			r.logger.Warn("skipping operation with invalid amount",
				zap.String("file", r.FilePath), zap.Int("line", line), zap.Error(err))
			return nil
		}

		ops = append(ops, domain.Operation{
			Action: action,
			From:   strings.TrimSpace(row[columnMap["from"]]),
			To:     strings.TrimSpace(row[columnMap["to"]]),
			Amount: amount,
		})
		return nil
	}

	if err := reader.Process(headerFn, rowFn); err != nil {
		return nil, fmt.Errorf("reading operations: %w", err)
	}

	return ops, nil
}
