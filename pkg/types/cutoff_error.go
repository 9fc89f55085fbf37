//go:build minlog_error && !minlog_all && !minlog_trace && !minlog_debug && !minlog_warn

package types

// Cutoff admits only ERROR in minlog_error builds.
const Cutoff Level = LevelError
