//go:build minlog_debug && !minlog_all && !minlog_trace

package types

// Cutoff admits DEBUG and above in minlog_debug builds.
const Cutoff Level = LevelDebug
