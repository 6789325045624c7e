package registry

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// Logger returns the registry's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger installs l as the registry logger. The pre-drain warning is
// the one user-visible message this package emits; hosts should route it
// somewhere visible.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}
