package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iwvelando/tour-estimate/internal/estimate"
	"github.com/iwvelando/tour-estimate/internal/pricing"
	"github.com/iwvelando/tour-estimate/internal/rates"
	"github.com/iwvelando/tour-estimate/pkg/constants"
	"github.com/iwvelando/tour-estimate/pkg/output"
	"github.com/iwvelando/tour-estimate/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig estimate.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
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

	var config zap.Config
	switch format {
	case "console":
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

func main() {
	// Process command line flags first to get the document location
	documentLocation := flag.String("config", constants.DefaultEstimateFile, "path to estimate document")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	document, err := estimate.LoadDocument(*documentLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load estimate at %s\", \"error\": \"%v\"}\n", *documentLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(document.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over document)
	outputFormat := document.Output.Format
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

	// Validate the estimate before any calculation; a document that fails
	// validation is never priced.
	errors := validation.ValidateEstimate(&document.Estimate)
	if len(errors) > 0 {
		for _, e := range errors {
			logger.Error("Estimate validation error: "+e,
				zap.String("op", "main"),
			)
		}
		logger.Fatal("estimate failed validation",
			zap.String("op", "main"),
			zap.Int("errors", len(errors)),
		)
	}

	prepared := estimate.Prepare(&document.Estimate)

	rateService := rates.NewService(logger, rates.FallbackSource(), rates.DefaultTTL)
	if rate, rateErr := rateService.Rate(prepared.Currency); rateErr != nil {
		logger.Warn("no exchange rate for estimate currency",
			zap.String("op", "main"),
			zap.String("currency", prepared.Currency),
		)
	} else {
		logger.Debug("resolved estimate currency",
			zap.String("op", "main"),
			zap.String("currency", prepared.Currency),
			zap.Float64("unitsPerUSD", rate),
		)
	}

	quote := pricing.BuildQuote(logger, prepared)

	logger.Info("estimate priced",
		zap.String("op", "main"),
		zap.String("estimate", quote.Name),
		zap.Float64("baseCost", quote.BaseCost),
		zap.Float64("finalCost", quote.FinalCost),
	)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(quote)
	case constants.OutputFormatCSV:
		output.CsvFormat(quote)
	}
}
