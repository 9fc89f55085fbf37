package types

// Config carries logger construction settings as a flat string map, the
// shape bootstrap code can assemble from flags, environment variables or
// a config file. Consumers read the keys they understand and ignore the
// rest, so one map can configure any registered logger type.
type Config map[string]string

// Keys read by the built-in loggers.
const (
	// KeyType selects the logger type to construct.
	KeyType = "type"
	// KeyColor enables colored labels on the stdout logger. Presence of
	// the key is what matters; the value may be empty.
	KeyColor = "color"
	// KeyFileName names the output file for the file logger. The pid is
	// prefixed to the base name at construction.
	KeyFileName = "file_name"
	// KeyReopenInterval sets the file logger reopen period in whole
	// seconds.
	KeyReopenInterval = "reopen_interval"
)

// Keys read by the optional extra loggers.
const (
	// KeyAddress is the syslog socket or host:port address.
	KeyAddress = "address"
	// KeyTag is the syslog program tag.
	KeyTag = "tag"
	// KeyURL is the NATS server URL.
	KeyURL = "url"
	// KeySubject is the NATS publish subject.
	KeySubject = "subject"
)

// Logger type names pre-registered with every factory.
const (
	// TypeNull discards everything.
	TypeNull = ""
	// TypeStdOut writes to standard output.
	TypeStdOut = "std_out"
	// TypeFile writes to a pid-named file with timed reopening.
	TypeFile = "file"
)

// Clone returns an independent copy of the config. A nil config clones
// to an empty, non-nil map.
func (c Config) Clone() Config {
	clone := make(Config, len(c))
	for k, v := range c {
		clone[k] = v
	}
	return clone
}
