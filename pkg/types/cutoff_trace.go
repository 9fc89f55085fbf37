//go:build minlog_all || minlog_trace

package types

// Cutoff admits every level in minlog_all and minlog_trace builds.
const Cutoff Level = LevelTrace
