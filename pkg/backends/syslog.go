package backends

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/wayneeseguin/minlog/internal/metrics"
	"github.com/wayneeseguin/minlog/pkg/formatters"
	"github.com/wayneeseguin/minlog/pkg/types"
)

// ErrNoSyslogSocket reports that no local syslog socket could be found
// when the address key was left unset.
var ErrNoSyslogSocket = errors.New("no local syslog socket found")

// localSyslogPaths are probed in order when no address is configured.
var localSyslogPaths = []string{"/dev/log", "/var/run/syslog", "/var/run/log"}

// facilityUser is the syslog USER facility; priorities are facility*8
// plus severity.
const facilityUser = 1

// syslogSeverity maps levels onto syslog severities: debugging for
// TRACE and DEBUG, informational, warning and error for the rest.
var syslogSeverity = map[types.Level]int{
	types.LevelTrace: 7,
	types.LevelDebug: 7,
	types.LevelInfo:  6,
	types.LevelWarn:  4,
	types.LevelError: 3,
}

// Syslog sends log lines to a syslog daemon over a unixgram or udp
// socket, one datagram per line. It is not pre-registered; callers add
// it under a name of their choice before first use.
type Syslog struct {
	mu    sync.Mutex
	conn  net.Conn
	tag   string
	pid   int
	stats *metrics.Collector
}

var _ types.Logger = (*Syslog)(nil)

// NewSyslog builds a syslog logger from cfg. The address key may name a
// local socket path or a host:port to reach over udp; when unset, the
// usual local socket paths are probed. The tag key defaults to the
// executable name.
func NewSyslog(cfg types.Config) (*Syslog, error) {
	network := "unixgram"
	address := cfg[types.KeyAddress]
	switch {
	case address == "":
		for _, path := range localSyslogPaths {
			if _, err := os.Stat(path); err == nil {
				address = path
				break
			}
		}
		if address == "" {
			return nil, ErrNoSyslogSocket
		}
	case strings.Contains(address, ":"):
		network = "udp"
	}

	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, errors.Wrapf(err, "dial syslog %s", address)
	}

	tag := cfg[types.KeyTag]
	if tag == "" {
		tag = filepath.Base(os.Args[0])
	}

	return &Syslog{
		conn:  conn,
		tag:   tag,
		pid:   os.Getpid(),
		stats: metrics.Default(),
	}, nil
}

// Log emits message at level as one syslog datagram with the matching
// severity and the usual level label in the body.
func (s *Syslog) Log(level types.Level, message string) error {
	if level < types.Cutoff {
		return nil
	}
	severity, ok := syslogSeverity[level]
	if !ok {
		severity = 6
	}
	frame := s.frame(severity, formatters.Label(level, false)+message)
	if err := s.send(frame); err != nil {
		return err
	}
	s.stats.TrackLine(int(level), len(frame))
	return nil
}

// Write emits the payload as one informational datagram. Trailing
// newlines are dropped; datagram framing replaces them.
func (s *Syslog) Write(message string) error {
	frame := s.frame(6, " "+strings.TrimRight(message, "\n"))
	if err := s.send(frame); err != nil {
		return err
	}
	s.stats.TrackRaw(len(frame))
	return nil
}

// frame renders '<priority>timestamp tag[pid]:<body>' in the BSD syslog
// shape.
func (s *Syslog) frame(severity int, body string) string {
	priority := facilityUser*8 + severity
	return fmt.Sprintf("<%d>%s %s[%d]:%s",
		priority, time.Now().Format(time.Stamp), s.tag, s.pid, body)
}

func (s *Syslog) send(frame string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return errors.Wrap(ErrNotOpen, "syslog")
	}
	if _, err := s.conn.Write([]byte(frame)); err != nil {
		s.stats.TrackError()
		return errors.Wrap(err, "write syslog")
	}
	return nil
}

// Close closes the syslog connection. Idempotent.
func (s *Syslog) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn == nil {
		return nil
	}
	conn := s.conn
	s.conn = nil
	return errors.Wrap(conn.Close(), "close syslog")
}
