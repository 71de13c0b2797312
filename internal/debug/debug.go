// Package debug provides optional file-based debug logging.
//
// When the TOOLTIP_DEBUG environment variable is set to a file path, debug
// messages are appended to that file. Otherwise, logging is a no-op.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TOOLTIP_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *log.Logger
)

// Logger returns the shared debug logger. It discards everything unless
// TOOLTIP_DEBUG is set or Init was called.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		initLocked(os.Getenv(EnvVar))
	}
	return logger
}

// Init directs debug logging to the file at path. An empty path discards
// all output.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		logger = newLogger(io.Discard)
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger = newLogger(io.Discard)
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger = newLogger(io.Discard)
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	logger = newLogger(f)
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           log.DebugLevel,
		Prefix:          "tooltip",
	})
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	Logger().Debugf(format, args...)
}
