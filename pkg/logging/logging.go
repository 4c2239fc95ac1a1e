package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/renumber/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppDirName is the directory name used under the XDG state home
const AppDirName = "renumber"

// Component names attached to every log line as the "component" field
const (
	ComponentCLI         = "cli"
	ComponentConfig      = "config"
	ComponentListing     = "listing"
	ComponentPlanner     = "planner"
	ComponentValidate    = "planner.validate"
	ComponentPreview     = "core.preview"
	ComponentApply       = "core.apply"
	ComponentExecutor    = "executor"
	ComponentCasefold    = "filesystem.casefold"
	ComponentInteractive = "interactive"
)

// LevelForVerbosity maps the count of -v flags to a level. A bare run only
// reports warnings since the rename report already goes to stdout.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger for the given verbosity.
// Lines go to stderr and are appended to renumber.log under the XDG state
// home, so a run that renamed half a directory can be reconstructed later.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(LevelForVerbosity(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}}

	logPath := getLogFilePath()
	file, fileErr := setupLogFile(logPath)
	if fileErr == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component name
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// WithPlan adds the plan's directory and size to logger so every line of a
// preview or execution can be tied back to the run that produced it.
func WithPlan(logger zerolog.Logger, plan *types.Plan) zerolog.Logger {
	if plan == nil {
		return logger
	}
	return logger.With().
		Str("dir", plan.Directory).
		Int("entries", plan.Len()).
		Int("changed", plan.ChangedCount()).
		Logger()
}

func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return AppDirName + ".log"
	}
	return filepath.Join(stateHome, AppDirName, AppDirName+".log")
}

func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")
	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
