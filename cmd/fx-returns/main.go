package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/fx-returns/internal/config"
	"github.com/iwvelando/fx-returns/internal/optimizer"
	"github.com/iwvelando/fx-returns/internal/rates"
	"github.com/iwvelando/fx-returns/pkg/constants"
	"github.com/iwvelando/fx-returns/pkg/output"
	"github.com/iwvelando/fx-returns/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// The rates file name is the single positional argument.
	ratesFile := flag.Arg(0)
	if ratesFile == "" {
		fmt.Fprintln(os.Stderr, "Error: could not calculate the maximum returns; please provide a returns data file name.")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <rates-file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(1)
	}

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	logger.Info("loading rates data",
		zap.String("op", "main"),
		zap.String("file", ratesFile),
		zap.String("folder", conf.Search.DataFolder),
	)

	tensor, err := rates.Load(conf.Search.DataFolder, ratesFile)
	if err != nil {
		logger.Fatal("failed to load rates data",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := rates.CheckShape(tensor, conf.Search.Periods, conf.Search.Currencies); err != nil {
		logger.Fatal("rates data has the wrong shape",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	logger.Info("calculating the maximum return over the horizon",
		zap.String("op", "main"),
		zap.Int("periods", tensor.Periods()),
		zap.Int("currencies", tensor.Currencies()),
	)

	search := optimizer.Search{
		Tensor:         tensor,
		StartPeriod:    conf.Search.StartPeriod,
		StartCurrency:  conf.Search.StartCurrency,
		TargetCurrency: conf.Search.TargetCurrency,
		Value:          1.0,
	}
	result, err := search.Run()
	if err != nil {
		logger.Fatal("failed to compute maximum return",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	report := output.Report{
		Result:     result,
		StartValue: search.Value,
		Profit:     optimizer.Profit(result.Multiplier),
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(report)
	case constants.OutputFormatCSV:
		output.CsvFormat(report)
	}

	logger.Info("maximum possible return computed",
		zap.String("op", "main"),
		zap.Float64("multiplier", result.Multiplier),
		zap.Float64("profitPercent", report.Profit),
	)
}
