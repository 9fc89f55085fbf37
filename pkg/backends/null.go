// Package backends implements the logger backends: the null logger, the
// stdout logger, the pid-named file logger with timed reopening, and the
// optional syslog and NATS loggers that callers register themselves.
package backends

import "github.com/wayneeseguin/minlog/pkg/types"

// Null discards everything. It backs the empty logger type so "log
// nowhere" is a configuration, not a nil check at every call site.
type Null struct{}

var _ types.Logger = (*Null)(nil)

// NewNull builds a null logger. The configuration is accepted for
// creator signature uniformity and ignored.
func NewNull(_ types.Config) *Null {
	return &Null{}
}

// Log discards the message.
func (*Null) Log(types.Level, string) error { return nil }

// Write discards the payload.
func (*Null) Write(string) error { return nil }
