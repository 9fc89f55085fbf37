package minlog

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/wayneeseguin/minlog/pkg/backends"
)

func TestWriterBridgesTheStandardLogger(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	if err := Configure(Config{KeyType: TypeStdOut}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	logger, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	var buf bytes.Buffer
	logger.(*backends.StdOut).SetOutput(&buf)

	std := log.New(NewWriter(LevelError), "", 0)
	std.Println("borrowed sink")

	pattern := regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \[\d+\] \[ERROR\] borrowed sink\n$`)
	if !pattern.MatchString(buf.String()) {
		t.Errorf("bridged line %q does not match %v", buf.String(), pattern)
	}
}

func TestWriterReportsLength(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	pinLogger(&recorder{})

	payload := []byte("counted\n")
	n, err := NewWriter(LevelInfo).Write(payload)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(payload) {
		t.Errorf("Write reported %d bytes, want %d", n, len(payload))
	}
}
