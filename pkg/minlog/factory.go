package minlog

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/wayneeseguin/minlog/pkg/backends"
)

// Creator builds a logger from a configuration.
type Creator func(cfg Config) (Logger, error)

// Factory maps logger type names to creators. The zero value is not
// usable; NewFactory returns one with the built-in types registered.
// All methods are safe for concurrent use.
type Factory struct {
	mu       sync.RWMutex
	creators map[string]Creator
}

// NewFactory returns a factory with the built-in logger types
// registered: the null logger under the empty name, "std_out" and
// "file". The syslog and NATS loggers are deliberately not built in;
// callers that want them register them under names of their choosing.
func NewFactory() *Factory {
	f := &Factory{creators: make(map[string]Creator)}
	f.Register(TypeNull, func(cfg Config) (Logger, error) {
		return backends.NewNull(cfg), nil
	})
	f.Register(TypeStdOut, func(cfg Config) (Logger, error) {
		return backends.NewStdOut(cfg), nil
	})
	f.Register(TypeFile, func(cfg Config) (Logger, error) {
		return backends.NewFile(cfg)
	})
	return f
}

// Register adds or replaces the creator for a logger type name.
func (f *Factory) Register(name string, create Creator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = create
}

// Types returns the registered type names, sorted.
func (f *Factory) Types() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Produce builds a logger from cfg. The type key selects the creator;
// a configuration without the key fails with ErrNoLoggerType and an
// unregistered type fails with ErrUnknownLoggerType. Creator failures
// are wrapped and returned.
func (f *Factory) Produce(cfg Config) (Logger, error) {
	name, ok := cfg[KeyType]
	if !ok {
		return nil, errors.Wrap(ErrNoLoggerType, "produce")
	}

	f.mu.RLock()
	create, ok := f.creators[name]
	f.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownLoggerType, "%q", name)
	}

	logger, err := create(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "produce %q logger", name)
	}
	return logger, nil
}

// defaultFactory serves the package-level functions and the singleton.
var defaultFactory = NewFactory()

// DefaultFactory returns the factory used by GetLogger and the
// package-level Register.
func DefaultFactory() *Factory {
	return defaultFactory
}

// Register adds or replaces a creator on the default factory.
func Register(name string, create Creator) {
	defaultFactory.Register(name, create)
}

// Produce builds a logger from cfg with the default factory. Unlike
// GetLogger this constructs a fresh instance on every call and leaves
// the process-wide logger alone.
func Produce(cfg Config) (Logger, error) {
	return defaultFactory.Produce(cfg)
}
