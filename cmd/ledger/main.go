package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/tirasundara/loan-ledger/internal/config"
	"github.com/tirasundara/loan-ledger/internal/domain"
	"github.com/tirasundara/loan-ledger/internal/logging"
	"github.com/tirasundara/loan-ledger/internal/report"
	"github.com/tirasundara/loan-ledger/internal/repository"
	"github.com/tirasundara/loan-ledger/internal/service"
)

func main() {
	// Command-line flags
	var (
		configFile     string
		partiesFile    string
		operationsFile string
		outputFormat   string
		outputFile     string
		logLevel       string
		prettyPrint    bool
	)

	flag.StringVar(&configFile, "config", "", "Path to a YAML config file (optional)")
	flag.StringVar(&partiesFile, "parties", "", "Path to the party roster CSV file")
	flag.StringVar(&operationsFile, "operations", "", "Path to the operations CSV file")
	flag.StringVar(&outputFormat, "format", "", "Output format: text or json")
	flag.StringVar(&outputFile, "output", "", "Path to output file (if empty, writes to stdout)")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON output")

	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		exitWithError(fmt.Sprintf("Loading configuration: %v", err))
	}

	// Flags win over config file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "parties":
			cfg.Scenario.PartiesFile = partiesFile
		case "operations":
			cfg.Scenario.OperationsFile = operationsFile
		case "format":
			cfg.Report.Format = outputFormat
		case "output":
			cfg.Report.Output = outputFile
		case "log-level":
			cfg.Log.Level = logLevel
		case "pretty":
			cfg.Report.Pretty = prettyPrint
		}
	})

	if err := cfg.Validate(); err != nil {
		exitWithError(err.Error())
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		exitWithError(fmt.Sprintf("Creating logger: %v", err))
	}
	defer func() { _ = logger.Sync() }()

	formatter, err := report.NewFormatter(cfg.Report.Format, cfg.Report.Pretty)
	if err != nil {
		exitWithError(err.Error())
	}

	var (
		partyRepo     domain.PartyRepository
		operationRepo domain.OperationRepository
	)
	if cfg.UseReferenceScenario() {
		logger.Info("no scenario files given, running the reference scenario")
		partyRepo, operationRepo = service.ReferenceScenario()
	} else {
		partyRepo = repository.NewCSVPartyRepository(cfg.Scenario.PartiesFile, logger)
		operationRepo = repository.NewCSVOperationRepository(cfg.Scenario.OperationsFile, logger)
	}

	scenarioService := service.NewScenarioService(partyRepo, operationRepo, logger)

	result, err := scenarioService.Run()
	if err != nil {
		logger.Error("scenario failed", zap.Error(err))
		exitWithError(fmt.Sprintf("Scenario failed: %v", err))
	}

	output, err := formatter.Format(result)
	if err != nil {
		exitWithError(fmt.Sprintf("Failed to format output: %v", err))
	}

	// Output the result
	if cfg.Report.Output != "" {
		path := cfg.Report.Output

		// If no extension is provided, add the formatter's default extension
		if !strings.Contains(path, ".") {
			path = fmt.Sprintf("%s.%s", path, formatter.FileExtension())
		}

		if err := os.WriteFile(path, output, 0644); err != nil {
			exitWithError(fmt.Sprintf("Failed to write output file: %v", err))
		}

		logger.Info("report written", zap.String("path", path))
		return
	}

	fmt.Println(strings.TrimRight(string(output), "\n"))
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
