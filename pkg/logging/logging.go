package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/assetlint/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how the global logger is built
type Options struct {
	// Verbosity maps 0 to WARN, 1 to INFO, 2 to DEBUG and anything higher to TRACE
	Verbosity int
	NoColor   bool
	// Console defaults to stderr
	Console io.Writer
	// LogFile defaults to assetlint.log in the state directory. "-" disables it.
	LogFile string
}

// Level returns the zerolog level for a -v count
func Level(verbosity int) zerolog.Level {
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

// Setup configures the global logger. Output goes to the console and, when
// it can be opened, to the log file.
func Setup(opts Options) {
	zerolog.SetGlobalLevel(Level(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    opts.NoColor,
	}}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = paths.LogFilePath()
	}
	var fileErr error
	if logFile != "-" {
		var handle *os.File
		handle, fileErr = openLogFile(logFile)
		if fileErr == nil {
			writers = append(writers, handle)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if opts.Verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", opts.Verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// ScanLogger tags every event of one scan with its id and root
func ScanLogger(logger zerolog.Logger, scanID, root string) zerolog.Logger {
	return logger.With().Str("scan", scanID).Str("root", root).Logger()
}

// StartPhase logs the start of a scan phase and returns a function that logs
// its end together with the number of items the phase handled.
func StartPhase(logger zerolog.Logger, phase string) func(items int) {
	start := time.Now()
	logger.Debug().Str("phase", phase).Msg("Phase started")

	return func(items int) {
		logger.Debug().
			Str("phase", phase).
			Int("items", items).
			Dur("duration", time.Since(start)).
			Msg("Phase finished")
	}
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
