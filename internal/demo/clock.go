package demo

import "sync/atomic"

// Sequencer assigns strictly increasing sequence numbers to transcript
// lines. Clock is the default implementation; tests substitute resettable
// clocks to pin seq values across repeated runs.
type Sequencer interface {
	// Next returns the next sequence number and advances the sequencer.
	Next() int64
}

// Clock is the monotonic logical clock stamping transcript lines.
//
// Every emitted line carries a strictly increasing seq number from this
// clock, never a wall-clock timestamp. A fresh clock per run means
// re-running a demo with identical inputs produces identical lines.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though demo execution itself is single-threaded.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
