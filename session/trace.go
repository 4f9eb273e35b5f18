package session

import "github.com/npillmayer/epicycle"

// TraceBuffer records the tip of the epicycle chain, one point per frame.
// It is meaningful only for one coefficient set within one animation
// period; the session resets it when either changes.
type TraceBuffer struct {
	points []epicycle.Pair
}

// NewTraceBuffer creates an empty buffer with room for capacity points.
func NewTraceBuffer(capacity int) *TraceBuffer {
	return &TraceBuffer{points: make([]epicycle.Pair, 0, capacity)}
}

// Append records a point.
func (b *TraceBuffer) Append(p epicycle.Pair) {
	b.points = append(b.points, p)
}

// Reset empties the buffer, keeping its storage.
func (b *TraceBuffer) Reset() {
	b.points = b.points[:0]
}

// Len is the number of recorded points.
func (b *TraceBuffer) Len() int {
	return len(b.points)
}

// Points returns the recorded points. The slice shares storage with the
// buffer and is valid until the next Append or Reset.
func (b *TraceBuffer) Points() []epicycle.Pair {
	return b.points
}
