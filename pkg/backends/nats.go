package backends

import (
	"strings"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/wayneeseguin/minlog/internal/metrics"
	"github.com/wayneeseguin/minlog/pkg/formatters"
	"github.com/wayneeseguin/minlog/pkg/types"
)

// ErrNoSubject reports a NATS logger configured without the subject key.
var ErrNoSubject = errors.New("no subject provided")

// natsClientName identifies this facility to the NATS server.
const natsClientName = "minlog"

// NATS publishes log lines to a NATS subject, one message per line. It
// is not pre-registered; callers add it under a name of their choice
// before first use:
//
//	minlog.Register("nats", func(cfg minlog.Config) (minlog.Logger, error) {
//		return backends.NewNATS(cfg)
//	})
type NATS struct {
	mu      sync.Mutex
	conn    *nats.Conn
	subject string
	line    formatters.Line
	stats   *metrics.Collector
}

var _ types.Logger = (*NATS)(nil)

// NewNATS builds a NATS logger from cfg. The subject key is required;
// the url key defaults to the local server.
func NewNATS(cfg types.Config) (*NATS, error) {
	subject, ok := cfg[types.KeySubject]
	if !ok || subject == "" {
		return nil, errors.Wrap(ErrNoSubject, "nats logger")
	}

	url := cfg[types.KeyURL]
	if url == "" {
		url = nats.DefaultURL
	}

	conn, err := nats.Connect(url, nats.Name(natsClientName))
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", url)
	}

	return &NATS{
		conn:    conn,
		subject: subject,
		stats:   metrics.Default(),
	}, nil
}

// Log publishes message at level with the plain label and no pid tag.
// Message framing replaces the trailing newline.
func (n *NATS) Log(level types.Level, message string) error {
	if level < types.Cutoff {
		return nil
	}
	payload := strings.TrimSuffix(n.line.Format(level, message), "\n")
	if err := n.publish([]byte(payload)); err != nil {
		return err
	}
	n.stats.TrackLine(int(level), len(payload))
	return nil
}

// Write publishes the payload verbatim as one message.
func (n *NATS) Write(message string) error {
	if err := n.publish([]byte(message)); err != nil {
		return err
	}
	n.stats.TrackRaw(len(message))
	return nil
}

func (n *NATS) publish(payload []byte) error {
	n.mu.Lock()
	conn := n.conn
	n.mu.Unlock()
	if conn == nil {
		return errors.Wrap(ErrNotOpen, "nats")
	}
	if err := conn.Publish(n.subject, payload); err != nil {
		n.stats.TrackError()
		return errors.Wrapf(err, "publish %s", n.subject)
	}
	return nil
}

// Close flushes pending publishes and closes the connection. Idempotent.
func (n *NATS) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil {
		return nil
	}
	conn := n.conn
	n.conn = nil
	err := conn.Flush()
	conn.Close()
	return errors.Wrap(err, "flush nats")
}
