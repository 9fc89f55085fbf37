package minlog

import "github.com/wayneeseguin/minlog/internal/metrics"

// Metrics is a point-in-time snapshot of the counters every logger in
// the process feeds.
type Metrics struct {
	// Line counters
	LinesTotal   uint64           // Leveled lines emitted
	LinesByLevel map[Level]uint64 // Leveled lines by severity
	RawWrites    uint64           // Preformatted payloads emitted

	// Volume
	BytesWritten uint64 // Bytes handed to the sinks

	// File operations
	FileReopens uint64 // File logger open and reopen count

	// Error tracking
	WriteErrors uint64 // Failed writes, opens and locks
}

// GetMetrics returns a snapshot of the process-wide logging counters.
func GetMetrics() Metrics {
	s := metrics.Default().Snapshot()

	byLevel := make(map[Level]uint64, metrics.LevelSlots)
	for i, n := range s.Lines {
		if n != 0 {
			byLevel[Level(i)] = n
		}
	}

	return Metrics{
		LinesTotal:   s.LinesTotal,
		LinesByLevel: byLevel,
		RawWrites:    s.RawWrites,
		BytesWritten: s.Bytes,
		FileReopens:  s.Reopens,
		WriteErrors:  s.Errors,
	}
}

// ResetMetrics zeroes the process-wide logging counters.
func ResetMetrics() {
	metrics.Default().Reset()
}
