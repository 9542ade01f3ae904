// Package sequence assigns each inbound request a process-lifetime-monotonic
// number and a timing window, used only for audit correlation. It never
// touches catalog state.
package sequence

import (
	"context"
	"sync/atomic"
	"time"
)

// Sequencer hands out request sequence numbers. The counter starts at 1 and
// is safe for concurrent use.
type Sequencer struct {
	counter atomic.Uint64
}

func New() *Sequencer {
	return &Sequencer{}
}

// Next returns the next sequence number. The first call returns 1.
func (s *Sequencer) Next() uint64 {
	return s.counter.Add(1)
}

// Entry is the ephemeral per-request record. It is captured once at request
// entry and carried through the request context, so the completion record
// always references the number assigned at entry rather than whatever the
// shared counter holds by then.
type Entry struct {
	Seq   uint64
	Start time.Time
}

// Elapsed returns the whole milliseconds since request entry.
func (e Entry) Elapsed() int64 {
	return time.Since(e.Start).Milliseconds()
}

type contextKey struct{}

// NewContext returns a context carrying the request's entry record.
func NewContext(ctx context.Context, e Entry) context.Context {
	return context.WithValue(ctx, contextKey{}, e)
}

// FromContext retrieves the entry record stamped on the request, if any.
func FromContext(ctx context.Context) (Entry, bool) {
	e, ok := ctx.Value(contextKey{}).(Entry)
	return e, ok
}
