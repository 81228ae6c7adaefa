package report

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/tirasundara/loan-ledger/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OutputFormatter defines the interface for formatting scenario results
type OutputFormatter interface {
	Format(result domain.ScenarioResult) ([]byte, error)
	FileExtension() string
}

// NewFormatter returns the formatter registered under name
func NewFormatter(name string, prettyPrint bool) (OutputFormatter, error) {
	switch strings.ToLower(name) {
	case "text", "txt":
		return NewTextFormatter(), nil
	case "json":
		return NewJSONFormatter(prettyPrint), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", name)
	}
}

// JSONFormatter formats scenario results as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(result domain.ScenarioResult) ([]byte, error) {
	if f.PrettyPrint {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

func (f *JSONFormatter) FileExtension() string {
	return "json"
}

// TextFormatter prints one line per operation, then every party's balance,
// then the outstanding loans if there are any
type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format implements the OutputFormatter interface for plain text
func (f *TextFormatter) Format(result domain.ScenarioResult) ([]byte, error) {
	var sb strings.Builder

	for _, outcome := range result.Outcomes {
		sb.WriteString(describe(outcome))
		sb.WriteByte('\n')
	}

	for _, b := range result.Balances {
		fmt.Fprintf(&sb, "%s's balance: %s\n", b.FirstName, b.Balance)
	}

	if result.Summary != "" {
		sb.WriteString("Outstanding loans:\n")
		sb.WriteString(result.Summary)
		sb.WriteByte('\n')
	}

	return []byte(sb.String()), nil
}

func (f *TextFormatter) FileExtension() string {
	return "txt"
}

func describe(outcome domain.OperationOutcome) string {
	var verb string
	switch outcome.Operation.Action {
	case domain.ActionLend:
		verb = "lent"
		if !outcome.OK {
			verb = "lend"
		}
	case domain.ActionRepay:
		verb = "repaid"
		if !outcome.OK {
			verb = "repay"
		}
	default:
		verb = string(outcome.Operation.Action)
	}

	if outcome.OK {
		return fmt.Sprintf("%s %s money to %s.", outcome.FromName, verb, outcome.ToName)
	}

	return fmt.Sprintf("%s could not %s %s to %s: %s.",
		outcome.FromName, verb, outcome.Operation.Amount, outcome.ToName, outcome.Reason)
}
