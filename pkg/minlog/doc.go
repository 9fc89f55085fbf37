// Package minlog provides a small leveled logging facility with a
// process-wide logger, pluggable backends behind a factory, and a
// compile-time level cutoff.
//
// Messages carry one of five severities, TRACE through ERROR, and are
// emitted as single lines of the form
//
//	2025/03/14 09:26:53.589793 [12345] [INFO] the message
//
// with a UTC microsecond timestamp. The stdout logger colors the level
// label with ANSI escapes and tags lines with the process id; the file
// logger keeps lines plain and carries the pid in the file name instead.
//
// Basic Usage:
//
//	minlog.Info("Application started")
//	minlog.Error("Connection lost")
//
// The first call creates the process-wide logger with the default
// configuration, colored stdout. To choose a different logger, configure
// before anything logs:
//
//	err := minlog.Configure(minlog.Config{
//		"type":            "file",
//		"file_name":       "/var/log/app.log",
//		"reopen_interval": "60",
//	})
//
// Whichever configuration reaches the process-wide logger first wins;
// later calls return the same instance. Independent loggers come from
// the factory:
//
//	logger, err := minlog.Produce(minlog.Config{"type": "std_out"})
//
// Level Cutoff:
//
// The cutoff is fixed at build time. Default builds log INFO and above;
// the build tags minlog_all, minlog_trace, minlog_debug, minlog_warn,
// minlog_error and minlog_none select the other cutoffs:
//
//	go build -tags minlog_trace ./...
//
// Discarded messages cost a single comparison.
//
// Custom Backends:
//
// A logger is anything with Log and Write. Register a creator to make it
// configurable:
//
//	minlog.Register("syslog", func(cfg minlog.Config) (minlog.Logger, error) {
//		return backends.NewSyslog(cfg)
//	})
//
// The optional syslog and NATS backends in pkg/backends are wired up
// exactly this way.
//
// Raw Writes:
//
// Write bypasses levels and formatting and emits its payload verbatim,
// for callers that build their own framing:
//
//	minlog.Write(timestamp + " \x1b[35;1m[CUSTOM]\x1b[0m " + msg + "\n")
package minlog
