package minlog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/wayneeseguin/minlog/pkg/backends"
)

// resetGlobalLogger clears the pinned process-wide logger so each test
// starts from a clean slate.
func resetGlobalLogger() {
	globalMu.Lock()
	globalLogger = nil
	globalMu.Unlock()
}

func pinLogger(l Logger) {
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
}

type recordedCall struct {
	level Level
	msg   string
	raw   bool
}

// recorder is a logger that remembers every call it receives.
type recorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (r *recorder) Log(level Level, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{level: level, msg: message})
	return nil
}

func (r *recorder) Write(message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, recordedCall{msg: message, raw: true})
	return nil
}

func (r *recorder) snapshot() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedCall(nil), r.calls...)
}

// failingLogger returns the same error from every call.
type failingLogger struct{ err error }

func (f failingLogger) Log(Level, string) error { return f.err }
func (f failingLogger) Write(string) error      { return f.err }

func TestGetLoggerDefaultIsColoredStdout(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	logger, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	out, ok := logger.(*backends.StdOut)
	if !ok {
		t.Fatalf("default logger is %T, want *backends.StdOut", logger)
	}

	var buf bytes.Buffer
	out.SetOutput(&buf)
	if err := logger.Log(LevelInfo, "hello"); err != nil {
		t.Fatalf("Log: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[32;1m[INFO]\x1b[0m hello\n") {
		t.Errorf("default logger should color its labels, got %q", buf.String())
	}
}

func TestGetLoggerFirstConfigurationWins(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	first, err := GetLogger(Config{KeyType: TypeNull})
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	second, err := GetLogger(Config{KeyType: TypeStdOut})
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	if second != first {
		t.Error("a later configuration displaced the pinned logger")
	}
	third, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	if third != first {
		t.Error("the no-argument call displaced the pinned logger")
	}
}

func TestGetLoggerRetriesAfterFailure(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	_, err := GetLogger(Config{KeyType: "bogus"})
	if !errors.Is(err, ErrUnknownLoggerType) {
		t.Fatalf("err = %v, want ErrUnknownLoggerType", err)
	}

	// The failure pinned nothing; the next configuration gets through.
	logger, err := GetLogger(Config{KeyType: TypeNull})
	if err != nil {
		t.Fatalf("GetLogger after failure: %v", err)
	}
	if _, ok := logger.(*backends.Null); !ok {
		t.Errorf("retry produced %T, want *backends.Null", logger)
	}
}

func TestConfigure(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	if err := Configure(Config{KeyType: TypeNull}); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	logger, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	if _, ok := logger.(*backends.Null); !ok {
		t.Fatalf("configured logger is %T, want *backends.Null", logger)
	}

	// After pinning, Configure is a no-op, not an error.
	if err := Configure(Config{KeyType: TypeStdOut}); err != nil {
		t.Fatalf("second Configure: %v", err)
	}
	pinned, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	if pinned != logger {
		t.Error("a later Configure displaced the pinned logger")
	}
}

func TestConfigureFileLoggerEndToEnd(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	dir := t.TempDir()
	err := Configure(Config{
		KeyType:           TypeFile,
		KeyFileName:       filepath.Join(dir, "test.log"),
		KeyReopenInterval: "1",
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	logger, err := GetLogger()
	if err != nil {
		t.Fatalf("GetLogger: %v", err)
	}
	file, ok := logger.(*backends.File)
	if !ok {
		t.Fatalf("configured logger is %T, want *backends.File", logger)
	}
	t.Cleanup(func() { _ = file.Close() })

	Error("boom")

	path := filepath.Join(dir, strconv.Itoa(os.Getpid())+"-test.log")
	if file.Path() != path {
		t.Errorf("Path() = %q, want %q", file.Path(), path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	pattern := regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}\.\d{6} \[ERROR\] boom\n$`)
	if !pattern.Match(content) {
		t.Errorf("file content %q does not match %v", content, pattern)
	}
}

func TestGetLoggerConcurrentFirstUse(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	const goroutines = 16
	loggers := make([]Logger, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger, err := GetLogger(Config{KeyType: TypeNull})
			if err != nil {
				t.Errorf("GetLogger: %v", err)
				return
			}
			loggers[i] = logger
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if loggers[i] != loggers[0] {
			t.Fatalf("goroutine %d got a different logger instance", i)
		}
	}
}

func TestFreeFunctionsUseTheProcessLogger(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	rec := &recorder{}
	pinLogger(rec)

	Trace("one")
	Debug("two")
	Info("three")
	Warn("four")
	Error("five")
	Log(LevelError, "six")
	Write("seven\n")

	want := []recordedCall{
		{level: LevelTrace, msg: "one"},
		{level: LevelDebug, msg: "two"},
		{level: LevelInfo, msg: "three"},
		{level: LevelWarn, msg: "four"},
		{level: LevelError, msg: "five"},
		{level: LevelError, msg: "six"},
		{msg: "seven\n", raw: true},
	}
	if got := rec.snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("calls = %+v, want %+v", got, want)
	}
}

func TestErrorHandlerReceivesFailures(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	boom := errors.New("sink exploded")
	pinLogger(failingLogger{err: boom})

	var (
		mu  sync.Mutex
		got []error
	)
	SetErrorHandler(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, err)
	})
	t.Cleanup(func() { SetErrorHandler(nil) })

	Info("one")
	Write("two")

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("handler saw %d errors, want 2", len(got))
	}
	for _, err := range got {
		if !errors.Is(err, boom) {
			t.Errorf("handler got %v, want the sink error", err)
		}
	}
}

func TestSetErrorHandlerNilRestoresDefault(t *testing.T) {
	resetGlobalLogger()
	t.Cleanup(resetGlobalLogger)

	pinLogger(failingLogger{err: errors.New("sink exploded")})

	var (
		mu    sync.Mutex
		count int
	)
	SetErrorHandler(func(error) {
		mu.Lock()
		defer mu.Unlock()
		count++
	})
	t.Cleanup(func() { SetErrorHandler(nil) })

	Info("one")
	SetErrorHandler(nil)
	Info("two") // goes to the default stderr handler

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("handler called %d times after being replaced, want 1", count)
	}
}
