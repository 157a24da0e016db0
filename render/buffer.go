package render

import "sync"

// lineBuffer accumulates one output line so it reaches the destination in
// a single Write call.
type lineBuffer struct {
	b []byte
}

var linePool = sync.Pool{New: func() any { return &lineBuffer{b: make([]byte, 0, 256)} }}

// getLineBuffer obtains a pooled buffer with zero length.
func getLineBuffer() *lineBuffer {
	lb := linePool.Get().(*lineBuffer)
	lb.b = lb.b[:0]
	return lb
}

// putLineBuffer returns lb to the pool.
func putLineBuffer(lb *lineBuffer) { linePool.Put(lb) }

// Bytes returns the buffered line.
func (lb *lineBuffer) Bytes() []byte { return lb.b }

// WriteString appends s.
func (lb *lineBuffer) WriteString(s string) { lb.b = append(lb.b, s...) }

// Newline terminates the line.
func (lb *lineBuffer) Newline() { lb.b = append(lb.b, '\n') }

// Pad appends n spaces.
func (lb *lineBuffer) Pad(n int) {
	for i := 0; i < n; i++ {
		lb.b = append(lb.b, ' ')
	}
}
