// Package metrics accumulates facility counters behind atomic
// operations so the write path never takes a lock for accounting.
package metrics

import "sync/atomic"

// LevelSlots is the number of distinct severities tracked per collector.
const LevelSlots = 5

// Collector counts emitted lines, raw writes, bytes, file reopen cycles
// and write-path errors. The zero value is ready to use; all methods are
// safe for concurrent use.
type Collector struct {
	lines      [LevelSlots]uint64
	linesTotal uint64
	rawWrites  uint64
	bytes      uint64
	reopens    uint64
	errors     uint64
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

var defaultCollector = NewCollector()

// Default returns the process-wide collector shared by loggers that were
// not given one of their own.
func Default() *Collector {
	return defaultCollector
}

// TrackLine records one emitted leveled line of n bytes. Levels outside
// the slot range still count toward the total.
func (c *Collector) TrackLine(level int, n int) {
	if level >= 0 && level < LevelSlots {
		atomic.AddUint64(&c.lines[level], 1)
	}
	atomic.AddUint64(&c.linesTotal, 1)
	atomic.AddUint64(&c.bytes, uint64(n))
}

// TrackRaw records one raw write of n bytes.
func (c *Collector) TrackRaw(n int) {
	atomic.AddUint64(&c.rawWrites, 1)
	atomic.AddUint64(&c.bytes, uint64(n))
}

// TrackReopen records a completed file open cycle.
func (c *Collector) TrackReopen() {
	atomic.AddUint64(&c.reopens, 1)
}

// TrackError records a failed write, open or lock operation.
func (c *Collector) TrackError() {
	atomic.AddUint64(&c.errors, 1)
}

// Snapshot is a point-in-time copy of a collector's counters.
type Snapshot struct {
	Lines      [LevelSlots]uint64
	LinesTotal uint64
	RawWrites  uint64
	Bytes      uint64
	Reopens    uint64
	Errors     uint64
}

// Snapshot copies the current counters. Concurrent trackers may land
// between field loads; each individual counter is consistent.
func (c *Collector) Snapshot() Snapshot {
	var s Snapshot
	for i := range c.lines {
		s.Lines[i] = atomic.LoadUint64(&c.lines[i])
	}
	s.LinesTotal = atomic.LoadUint64(&c.linesTotal)
	s.RawWrites = atomic.LoadUint64(&c.rawWrites)
	s.Bytes = atomic.LoadUint64(&c.bytes)
	s.Reopens = atomic.LoadUint64(&c.reopens)
	s.Errors = atomic.LoadUint64(&c.errors)
	return s
}

// Reset zeroes every counter.
func (c *Collector) Reset() {
	for i := range c.lines {
		atomic.StoreUint64(&c.lines[i], 0)
	}
	atomic.StoreUint64(&c.linesTotal, 0)
	atomic.StoreUint64(&c.rawWrites, 0)
	atomic.StoreUint64(&c.bytes, 0)
	atomic.StoreUint64(&c.reopens, 0)
	atomic.StoreUint64(&c.errors, 0)
}
