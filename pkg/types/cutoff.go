//go:build !minlog_all && !minlog_trace && !minlog_debug && !minlog_warn && !minlog_error && !minlog_none

package types

// Cutoff is the compiled level cutoff. Leveled writes below it are
// discarded before any work happens. Builds without a minlog_* level tag
// log at INFO and above; the tags minlog_all, minlog_trace, minlog_debug,
// minlog_warn, minlog_error and minlog_none select the other cutoffs at
// build time.
const Cutoff Level = LevelInfo
