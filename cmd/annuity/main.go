package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/finsheet/annuity-core/internal/config"
	"github.com/finsheet/annuity-core/pkg/annuity"
	"github.com/finsheet/annuity-core/pkg/constants"
	"github.com/finsheet/annuity-core/pkg/output"
	"github.com/finsheet/annuity-core/pkg/validation"
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

	// Parse log level
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

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	// Configure encoder
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
	// Process command line flags first to get config location
	configLocation := flag.String("config", "", "path to optional configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	function := flag.String("function", "pmt", "calculation to run: pmt, ipmt, ppmt, schedule")
	rate := flag.Float64("rate", 0, "per-period interest rate, e.g. 0.005 for 0.5% per period")
	annualRate := flag.Float64("annual-rate", 0, "annual interest rate in percent, e.g. 6.0; converted to a monthly rate and overriding -rate")
	periods := flag.Int("periods", 0, "total number of payment periods")
	period := flag.Int("period", 1, "period to decompose for ipmt/ppmt (1-based)")
	presentValue := flag.Float64("pv", 0, "present value override")
	futureValue := flag.Float64("fv", 0, "future value override")
	timing := flag.Int("timing", 0, "payment timing override: 0 = end of period, 1 = start of period")
	startDate := flag.String("start", "", "optional YYYY-MM start month for schedule row labels")
	flag.Parse()

	// Load the optional config file for defaults and logging configuration
	conf := &config.Configuration{}
	if *configLocation != "" {
		loaded, err := config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
		conf = loaded
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

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

	// Resolve cash-flow parameters: flags override config defaults.
	pv := conf.Defaults.PresentValue
	if isFlagSet("pv") {
		pv = *presentValue
	}
	fv := conf.Defaults.FutureValue
	if isFlagSet("fv") {
		fv = *futureValue
	}
	pay := conf.Defaults.Timing
	if isFlagSet("timing") {
		pay = *timing
	}

	periodicRate := *rate
	if isFlagSet("annual-rate") {
		periodicRate = *annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	}

	switch *function {
	case "pmt":
		printResult(annuity.Pmt(periodicRate, *periods, pv, fv, pay))
	case "ipmt":
		printResult(annuity.Ipmt(periodicRate, *period, *periods, pv, fv, pay))
	case "ppmt":
		printResult(annuity.Ppmt(periodicRate, *period, *periods, pv, fv, pay))
	case "schedule":
		schedule := annuity.Schedule(periodicRate, *periods, pv, fv, pay)
		if schedule == nil {
			logger.Fatal("no schedule for the supplied parameters",
				zap.String("op", "main"),
				zap.Int("periods", *periods),
				zap.Int("timing", pay),
			)
		}
		switch outputFormat {
		case constants.OutputFormatPretty:
			err = output.PrettyFormat(schedule, *startDate)
		case constants.OutputFormatCSV:
			err = output.CsvFormat(schedule, *startDate)
		}
		if err != nil {
			logger.Fatal("failed to format schedule",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	default:
		logger.Fatal("unknown function, expected pmt, ipmt, ppmt, or schedule",
			zap.String("op", "main"),
			zap.String("function", *function),
		)
	}
}

// printResult renders a single calculation result the way a formula engine
// renders a cell: the number, or NaN for a domain error.
func printResult(result float64) {
	if math.IsNaN(result) {
		fmt.Println("NaN")
		return
	}
	fmt.Printf("%.2f\n", result)
}

// isFlagSet reports whether the named flag was supplied on the command
// line, distinguishing an explicit zero from an absent flag.
func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
