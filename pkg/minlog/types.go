package minlog

import "github.com/wayneeseguin/minlog/pkg/types"

// The foundation types live in pkg/types so backends can share them;
// they are re-exported here so ordinary callers need only this package.
type (
	// Level is the severity of a log message.
	Level = types.Level
	// Config carries logger construction settings as a flat string map.
	Config = types.Config
	// Logger is the capability every backend implements.
	Logger = types.Logger
)

// Supported levels, lowest to highest severity.
const (
	LevelTrace = types.LevelTrace
	LevelDebug = types.LevelDebug
	LevelInfo  = types.LevelInfo
	LevelWarn  = types.LevelWarn
	LevelError = types.LevelError
)

// Cutoff is the compiled level cutoff; see pkg/types for the build tags
// that select it.
const Cutoff = types.Cutoff

// Configuration keys read by the built-in loggers.
const (
	KeyType           = types.KeyType
	KeyColor          = types.KeyColor
	KeyFileName       = types.KeyFileName
	KeyReopenInterval = types.KeyReopenInterval
)

// Configuration keys read by the optional syslog and NATS loggers.
const (
	KeyAddress = types.KeyAddress
	KeyTag     = types.KeyTag
	KeyURL     = types.KeyURL
	KeySubject = types.KeySubject
)

// Names of the pre-registered logger types.
const (
	TypeNull   = types.TypeNull
	TypeStdOut = types.TypeStdOut
	TypeFile   = types.TypeFile
)

// ParseLevel resolves a level name to its Level, ignoring case and
// surrounding space. The second return reports whether the name was
// recognized; unrecognized names resolve to LevelInfo.
func ParseLevel(name string) (Level, bool) {
	return types.ParseLevel(name)
}
