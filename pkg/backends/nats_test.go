package backends

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/wayneeseguin/minlog/internal/metrics"
	testhelpers "github.com/wayneeseguin/minlog/internal/testing"
	"github.com/wayneeseguin/minlog/pkg/types"
)

func TestNATSRequiresSubject(t *testing.T) {
	for _, cfg := range []types.Config{
		{},
		{types.KeySubject: ""},
		{types.KeyURL: nats.DefaultURL},
	} {
		_, err := NewNATS(cfg)
		if !errors.Is(err, ErrNoSubject) {
			t.Fatalf("NewNATS(%v) err = %v, want ErrNoSubject", cfg, err)
		}
	}
}

func TestNATSClosedConnection(t *testing.T) {
	n := &NATS{subject: "logs", stats: metrics.NewCollector()}
	if err := n.Write("late"); !errors.Is(err, ErrNotOpen) {
		t.Errorf("Write without connection = %v, want ErrNotOpen", err)
	}
	if err := n.Close(); err != nil {
		t.Errorf("Close without connection = %v, want nil", err)
	}
}

func natsURL() string {
	if url := os.Getenv("MINLOG_NATS_URL"); url != "" {
		return url
	}
	return nats.DefaultURL
}

func TestNATSPublish(t *testing.T) {
	testhelpers.SkipIfUnit(t, "needs a running NATS server")

	url := natsURL()
	nc, err := nats.Connect(url)
	if err != nil {
		t.Fatalf("Connect %s: %v", url, err)
	}
	defer nc.Close()

	const subject = "minlog.test.lines"
	sub, err := nc.SubscribeSync(subject)
	if err != nil {
		t.Fatalf("SubscribeSync: %v", err)
	}
	if err := nc.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	n, err := NewNATS(types.Config{types.KeyURL: url, types.KeySubject: subject})
	if err != nil {
		t.Fatalf("NewNATS: %v", err)
	}
	defer func() { _ = n.Close() }()

	if err := n.Log(types.LevelError, "boom"); err != nil {
		t.Fatalf("Log: %v", err)
	}
	msg, err := sub.NextMsg(2 * time.Second)
	if err != nil {
		t.Fatalf("NextMsg: %v", err)
	}
	payload := string(msg.Data)
	if !strings.HasSuffix(payload, " [ERROR] boom") {
		t.Errorf("payload %q should end with the labeled message", payload)
	}
	if strings.HasSuffix(payload, "\n") {
		t.Errorf("payload %q should not carry line framing", payload)
	}

	if err := n.Write("custom payload\n"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	msg, err = sub.NextMsg(2 * time.Second)
	if err != nil {
		t.Fatalf("NextMsg: %v", err)
	}
	if string(msg.Data) != "custom payload\n" {
		t.Errorf("raw publish must be verbatim: got %q", msg.Data)
	}
}
