package backends

import (
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/wayneeseguin/minlog/internal/metrics"
	"github.com/wayneeseguin/minlog/pkg/formatters"
	"github.com/wayneeseguin/minlog/pkg/types"
)

// Errors returned by the file logger.
var (
	// ErrNoOutputFile reports a file logger configured without the
	// file_name key.
	ErrNoOutputFile = errors.New("no output file provided")
	// ErrNotOpen reports a write attempted while the handle is closed,
	// either after Close or after a failed reopen. In the latter case
	// the first write past the reopen interval retries the open.
	ErrNotOpen = errors.New("log file is not open")
)

// DefaultReopenInterval is how long the file handle is kept before the
// write path closes and reopens it, unless reopen_interval overrides it.
const DefaultReopenInterval = 300 * time.Second

// File writes log lines to a pid-named file and periodically closes and
// reopens it, so an external rotator can move the file out from under a
// long-running process and the process starts a fresh one at the next
// interval boundary.
//
// Lock ordering: mu guards all handle state and is held across the write
// and the reopen check that follows it; the advisory flock is only ever
// taken while mu is held.
type File struct {
	mu         sync.Mutex
	path       string
	file       *os.File
	fileLock   *flock.Flock
	interval   time.Duration
	lastReopen time.Time
	closed     bool
	line       formatters.Line
	stats      *metrics.Collector
}

var _ types.Logger = (*File)(nil)

// NewFile builds a file logger from cfg.
//
// The file_name key is required; its base name is prefixed with "<pid>-"
// so concurrent processes write distinct files. reopen_interval selects
// the reopen period in whole seconds and defaults to 300. The file is
// opened append-mode during construction through the same timed-reopen
// path the write path uses; construction fails if it cannot be opened.
func NewFile(cfg types.Config) (*File, error) {
	name, ok := cfg[types.KeyFileName]
	if !ok {
		return nil, errors.Wrap(ErrNoOutputFile, "file logger")
	}

	interval := DefaultReopenInterval
	if raw, ok := cfg[types.KeyReopenInterval]; ok {
		secs, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.Errorf("%s is not a valid reopen interval", raw)
		}
		interval = time.Duration(secs) * time.Second
	}

	path := pidPath(name)
	if dir := filepath.Dir(path); dir != "." {
		// #nosec G301 -- log directories need to be traversable by other processes
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
	}

	f := &File{
		path: path,
		// The lock handle creates the file when it is missing; give it
		// the log file mode, not the flock default.
		fileLock: flock.New(path, flock.SetPermissions(0644)),
		interval: interval,
		stats:    metrics.Default(),
	}

	// lastReopen is zero, so this always performs the first open.
	f.mu.Lock()
	err := f.maybeReopen(time.Now())
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the pid-prefixed path the logger writes to.
func (f *File) Path() string {
	return f.path
}

// Log emits message at level as '<timestamp><label><message>' plus a
// newline, with plain labels and no pid tag; the pid lives in the file
// name instead. Messages below the compiled cutoff are discarded before
// any work happens.
func (f *File) Log(level types.Level, message string) error {
	if level < types.Cutoff {
		return nil
	}
	line := f.line.Format(level, message)
	if err := f.writeLine(line); err != nil {
		return err
	}
	f.stats.TrackLine(int(level), len(line))
	return nil
}

// Write emits the payload verbatim: no level gate, no timestamp, no
// added newline.
func (f *File) Write(message string) error {
	if err := f.writeLine(message); err != nil {
		return err
	}
	f.stats.TrackRaw(len(message))
	return nil
}

// writeLine performs one write-then-reopen-check cycle. When both the
// write and the reopen fail, the write error is returned; it is the one
// that tells the caller this payload was lost.
func (f *File) writeLine(payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var writeErr error
	switch {
	case f.closed:
		f.stats.TrackError()
		return errors.Wrap(ErrNotOpen, "logger closed")
	case f.file == nil:
		f.stats.TrackError()
		writeErr = errors.Wrap(ErrNotOpen, f.path)
	default:
		if _, err := f.file.WriteString(payload); err != nil {
			f.stats.TrackError()
			writeErr = errors.Wrapf(err, "write %s", f.path)
		}
	}

	if err := f.maybeReopen(time.Now()); err != nil && writeErr == nil {
		return err
	}
	return writeErr
}

// maybeReopen closes and reopens the file once the reopen interval has
// elapsed. The caller must hold mu.
//
// lastReopen advances before the open attempt, so a failed open leaves
// the logger degraded until the next interval boundary: writes in
// between fail fast with ErrNotOpen and the boundary write retries.
// There is no background retry and nothing is dropped silently.
func (f *File) maybeReopen(now time.Time) error {
	if f.closed || now.Sub(f.lastReopen) <= f.interval {
		return nil
	}
	f.lastReopen = now

	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}

	if err := f.fileLock.Lock(); err != nil {
		f.stats.TrackError()
		return errors.Wrapf(err, "lock %s", f.path)
	}
	defer func() { _ = f.fileLock.Unlock() }()

	// #nosec G302 G304 -- log files need to be readable and the path is the operator's
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		f.stats.TrackError()
		return errors.Wrapf(err, "open %s", f.path)
	}
	f.file = file
	f.lastReopen = time.Now()
	f.stats.TrackReopen()
	return nil
}

// Close releases the file handle. The logger is finished afterwards:
// writes fail with ErrNotOpen and no reopen is attempted. Close is
// idempotent.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.file == nil {
		return nil
	}
	file := f.file
	f.file = nil
	return errors.Wrapf(file.Close(), "close %s", f.path)
}

// pidPath prefixes the base name of name with "<pid>-", leaving any
// directory part alone.
func pidPath(name string) string {
	dir, base := filepath.Split(filepath.Clean(name))
	return filepath.Join(dir, strconv.Itoa(os.Getpid())+"-"+base)
}
