package sink

import (
	"context"

	"hearsay/contract"
	"hearsay/domain/event"
)

var _ contract.EventSink = (*CounterSink)(nil)

// CounterSink accumulates per-type totals, exposed to the debug surface.
type CounterSink struct {
	counter *event.Counter
}

func NewCounterSink(counter *event.Counter) *CounterSink {
	return &CounterSink{counter: counter}
}

func (s *CounterSink) Consume(_ context.Context, e event.Event) error {
	s.counter.Increment(e.Type)
	return nil
}

func (s *CounterSink) Totals(types ...event.Type) map[event.Type]int {
	totals := make(map[event.Type]int, len(types))
	for _, t := range types {
		totals[t] = s.counter.Get(t)
	}
	return totals
}
