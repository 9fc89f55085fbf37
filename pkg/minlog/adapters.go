package minlog

import "strings"

// Writer adapts the process-wide logger to io.Writer, so code that wants
// a plain sink can drive it. Each Write becomes one leveled message:
//
//	log.SetOutput(minlog.NewWriter(minlog.LevelInfo))
//	log.SetFlags(0)
//
// routes the standard library logger through the facility.
type Writer struct {
	level Level
}

// NewWriter returns a writer that logs every payload at level.
func NewWriter(level Level) *Writer {
	return &Writer{level: level}
}

// Write logs p at the writer's level. A trailing newline is dropped;
// the logger adds its own framing.
func (w *Writer) Write(p []byte) (int, error) {
	logger, err := GetLogger()
	if err != nil {
		return 0, err
	}
	if err := logger.Log(w.level, strings.TrimRight(string(p), "\n")); err != nil {
		return 0, err
	}
	return len(p), nil
}
