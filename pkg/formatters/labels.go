// Package formatters provides the timestamp and level-label formatting
// shared by the logging backends, and the Line type that assembles
// complete log lines from them.
package formatters

import (
	"fmt"

	"github.com/wayneeseguin/minlog/pkg/types"
)

// PlainLabels maps each level to its uncolored line label. The single
// leading and trailing spaces are part of the label so lines assemble by
// plain concatenation.
var PlainLabels = map[types.Level]string{
	types.LevelError: " [ERROR] ",
	types.LevelWarn:  " [WARN] ",
	types.LevelInfo:  " [INFO] ",
	types.LevelDebug: " [DEBUG] ",
	types.LevelTrace: " [TRACE] ",
}

// ColorLabels is PlainLabels with ANSI bold colors around the bracketed
// name, for terminals: red ERROR, yellow WARN, green INFO, blue DEBUG,
// white TRACE.
var ColorLabels = map[types.Level]string{
	types.LevelError: " \x1b[31;1m[ERROR]\x1b[0m ",
	types.LevelWarn:  " \x1b[33;1m[WARN]\x1b[0m ",
	types.LevelInfo:  " \x1b[32;1m[INFO]\x1b[0m ",
	types.LevelDebug: " \x1b[34;1m[DEBUG]\x1b[0m ",
	types.LevelTrace: " \x1b[37;1m[TRACE]\x1b[0m ",
}

// Label returns the label for level from the colored or plain table. A
// level outside the known range yields a synthesized bracketed label so
// that a line can still be produced.
func Label(level types.Level, colored bool) string {
	table := PlainLabels
	if colored {
		table = ColorLabels
	}
	if label, ok := table[level]; ok {
		return label
	}
	return fmt.Sprintf(" [%s] ", level)
}
