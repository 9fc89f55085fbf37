package backends

import (
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/pkg/errors"

	"github.com/wayneeseguin/minlog/internal/metrics"
	"github.com/wayneeseguin/minlog/pkg/formatters"
	"github.com/wayneeseguin/minlog/pkg/types"
)

// StdOut writes log lines to standard output. Every line is assembled in
// full before a single write call on the sink, so concurrent callers
// cannot interleave inside a line; the mutex additionally keeps whole
// lines ordered.
type StdOut struct {
	mu    sync.Mutex
	out   io.Writer
	line  formatters.Line
	stats *metrics.Collector
}

var _ types.Logger = (*StdOut)(nil)

// NewStdOut builds a stdout logger from cfg. Labels are colored when the
// "color" key is present, whatever its value; the default configuration
// carries the key empty, so default logging is colored. Construction
// cannot fail.
func NewStdOut(cfg types.Config) *StdOut {
	_, colored := cfg[types.KeyColor]
	return &StdOut{
		out: os.Stdout,
		line: formatters.Line{
			Colored: colored,
			Tag:     " [" + strconv.Itoa(os.Getpid()) + "]",
		},
		stats: metrics.Default(),
	}
}

// SetOutput redirects the logger to w. Tests use this to capture lines;
// production code has no reason to call it.
func (s *StdOut) SetOutput(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = w
}

// Log emits message at level as '<timestamp> [<pid>]<label><message>'
// plus a newline. Messages below the compiled cutoff are discarded
// before any work happens.
func (s *StdOut) Log(level types.Level, message string) error {
	if level < types.Cutoff {
		return nil
	}
	line := s.line.Format(level, message)
	if err := s.write(line); err != nil {
		return err
	}
	s.stats.TrackLine(int(level), len(line))
	return nil
}

// Write emits the payload verbatim: no level gate, no timestamp, no
// added newline.
func (s *StdOut) Write(message string) error {
	if err := s.write(message); err != nil {
		return err
	}
	s.stats.TrackRaw(len(message))
	return nil
}

func (s *StdOut) write(payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.out, payload); err != nil {
		s.stats.TrackError()
		return errors.Wrap(err, "write stdout")
	}
	return nil
}
