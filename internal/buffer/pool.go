// Package buffer pools the byte buffers used to assemble log lines, so
// steady-state logging reuses a handful of buffers instead of allocating
// one per line.
package buffer

import (
	"bytes"
	"sync"
)

// initialCapacity fits a typical log line without growing.
const initialCapacity = 512

// maxPooledCapacity caps what goes back into the pool; buffers grown by
// oversized messages are left for the garbage collector.
const maxPooledCapacity = 4096

// Pool hands out reusable byte buffers.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty pool. Buffers are created on demand.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, initialCapacity))
			},
		},
	}
}

// Get returns a reset buffer ready for use. Pair it with Put.
func (p *Pool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. The caller must not touch the
// buffer afterwards.
func (p *Pool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledCapacity {
		return
	}
	p.pool.Put(buf)
}

var defaultPool = NewPool()

// Get returns a reset buffer from the package pool.
func Get() *bytes.Buffer {
	return defaultPool.Get()
}

// Put returns a buffer to the package pool.
func Put(buf *bytes.Buffer) {
	defaultPool.Put(buf)
}
