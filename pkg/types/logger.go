package types

// Logger is the capability shared by every logging backend. Both methods
// are safe for concurrent use on a shared instance, and each emitted line
// reaches the sink through a single write call so concurrent callers
// cannot interleave inside a line.
//
// Errors from the underlying sink are returned to the caller;
// implementations never panic on I/O failure.
type Logger interface {
	// Log emits message at the given severity. Messages below the
	// compiled Cutoff are discarded before any formatting, locking or
	// I/O happens.
	Log(level Level, message string) error

	// Write emits a preformatted payload verbatim: no level gate, no
	// timestamp, no added newline.
	Write(message string) error
}
