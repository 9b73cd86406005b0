// Package logging provides the process-wide structured logger.
//
// Logs are JSON on stderr so they never interleave with command output on
// stdout. The logger is built on first use; call Init early to pick the
// level explicitly.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
)

func build(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.InitialFields = map[string]interface{}{"application": "listkeep"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// Init builds the process-wide logger. Verbose lowers the level to debug.
// Calling Init again replaces the logger.
func Init(verbose bool) error {
	l, err := build(verbose)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	logger = l
	return nil
}

// L returns the process-wide logger, initializing a default (info-level)
// one on first use.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		l, err := build(false)
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	}
	return logger
}

// Sync flushes buffered log entries. Call it on process exit.
func Sync() error {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return nil
	}
	return logger.Sync()
}
