package assistant

import "sync/atomic"

// Cycler hands out phrases from a fixed list in round-robin order.
// Safe for concurrent use: each call observes a distinct counter value.
type Cycler struct {
	phrases []string
	counter atomic.Uint64
}

// NewCycler builds a cycler over phrases. The list must be non-empty.
func NewCycler(phrases ...string) *Cycler {
	if len(phrases) == 0 {
		panic("assistant: cycler needs at least one phrase")
	}
	return &Cycler{phrases: phrases}
}

// Next returns the next phrase, wrapping around at the end of the list.
func (c *Cycler) Next() string {
	n := c.counter.Add(1) - 1
	return c.phrases[n%uint64(len(c.phrases))]
}
