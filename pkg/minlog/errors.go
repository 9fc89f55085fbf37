package minlog

import "github.com/pkg/errors"

// Errors returned by the factory. Construction errors from the logger
// types themselves, like the file logger's backends.ErrNoOutputFile, are
// wrapped and passed through, so errors.Is sees them too.
var (
	// ErrNoLoggerType reports a configuration without the type key. An
	// empty type is not this error; it names the null logger.
	ErrNoLoggerType = errors.New("no logger type provided")

	// ErrUnknownLoggerType reports a type with no registered creator.
	ErrUnknownLoggerType = errors.New("no such logger type")
)
