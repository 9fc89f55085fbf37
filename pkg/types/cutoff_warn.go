//go:build minlog_warn && !minlog_all && !minlog_trace && !minlog_debug

package types

// Cutoff admits WARN and above in minlog_warn builds.
const Cutoff Level = LevelWarn
