//go:build minlog_none && !minlog_all && !minlog_trace && !minlog_debug && !minlog_warn && !minlog_error

package types

// Cutoff suppresses every leveled write in minlog_none builds. Raw
// writes are not level-gated and still go through.
const Cutoff Level = LevelError + 1
