package minlog

import (
	"fmt"
	"os"
	"sync"
)

// The process-wide logger. It is created on first use and then pinned:
// whichever configuration reaches GetLogger first wins, and every later
// call returns the same instance no matter what it asks for. A failed
// construction pins nothing, so the next call gets a fresh chance.
var (
	globalMu     sync.Mutex
	globalLogger Logger
)

// DefaultConfig is what GetLogger uses when no configuration has been
// supplied: colored logging to stdout.
func DefaultConfig() Config {
	return Config{KeyType: TypeStdOut, KeyColor: ""}
}

// GetLogger returns the process-wide logger, constructing it from cfg on
// first use. Without an argument the default configuration applies. Once
// a construction has succeeded the configuration argument is ignored;
// use Produce for additional independent loggers.
func GetLogger(cfg ...Config) (Logger, error) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger != nil {
		return globalLogger, nil
	}

	chosen := DefaultConfig()
	if len(cfg) > 0 {
		chosen = cfg[0]
	}
	logger, err := defaultFactory.Produce(chosen)
	if err != nil {
		return nil, err
	}
	globalLogger = logger
	return globalLogger, nil
}

// Configure creates the process-wide logger from cfg if it does not
// exist yet. Call it during startup, before anything logs; once some
// call has pinned the logger, Configure has no effect.
func Configure(cfg Config) error {
	_, err := GetLogger(cfg)
	return err
}

// ErrorHandler receives errors from the package-level logging functions,
// which have no error return of their own.
type ErrorHandler func(err error)

// stderrHandler is the default: logging must not take the process down,
// but failures should leave a trace somewhere.
func stderrHandler(err error) {
	fmt.Fprintf(os.Stderr, "minlog: %v\n", err)
}

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = stderrHandler
)

// SetErrorHandler routes errors from the package-level logging functions
// to h. Passing nil restores the default stderr handler.
func SetErrorHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = stderrHandler
	}
	handler = h
}

func reportError(err error) {
	if err == nil {
		return
	}
	handlerMu.RLock()
	h := handler
	handlerMu.RUnlock()
	h(err)
}

// Log emits message at level through the process-wide logger, creating
// it with the default configuration if nothing has yet. Errors go to the
// error handler.
func Log(level Level, message string) {
	logger, err := GetLogger()
	if err != nil {
		reportError(err)
		return
	}
	reportError(logger.Log(level, message))
}

// Write emits a preformatted payload verbatim through the process-wide
// logger. Errors go to the error handler.
func Write(message string) {
	logger, err := GetLogger()
	if err != nil {
		reportError(err)
		return
	}
	reportError(logger.Write(message))
}

// Trace emits message at TRACE.
func Trace(message string) { Log(LevelTrace, message) }

// Debug emits message at DEBUG.
func Debug(message string) { Log(LevelDebug, message) }

// Info emits message at INFO.
func Info(message string) { Log(LevelInfo, message) }

// Warn emits message at WARN.
func Warn(message string) { Log(LevelWarn, message) }

// Error emits message at ERROR.
func Error(message string) { Log(LevelError, message) }
