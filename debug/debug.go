// Package debug provides opt-in diagnostics logging.
package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/drake/peek/config"
)

var (
	once   sync.Once
	logger *log.Logger
)

// Enabled returns true if debug mode is active (PEEK_DEBUG=1).
func Enabled() bool {
	return os.Getenv("PEEK_DEBUG") == "1"
}

// Logger returns the process-wide debug logger.
// When debug mode is off, or the log file cannot be opened, output is discarded.
// stdout belongs to the terminal, so the logger never writes there.
func Logger() *log.Logger {
	once.Do(func() {
		logger = log.New(io.Discard, "", 0)
		if !Enabled() {
			return
		}
		path := config.LogFile()
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		logger = log.New(f, "", log.LstdFlags)
		logger.Println("[DEBUG] logging started")
	})
	return logger
}
