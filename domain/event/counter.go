package event

import "sync"

// Counter accumulates per-type event totals for telemetry handlers.
type Counter struct {
	mu     sync.Mutex
	totals map[Type]int
}

func NewCounter() *Counter {
	return &Counter{totals: make(map[Type]int)}
}

func (c *Counter) Increment(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totals[t]++
}

func (c *Counter) Get(t Type) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals[t]
}
