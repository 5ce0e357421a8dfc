package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hearsay/contract"
	"hearsay/domain/event"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts engine events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for observability and side effects (logs, counters),
// not for dispatch decisions.
type EventFanout struct {
	log         *slog.Logger
	sinks       []contract.EventSink
	events      chan event.Event
	telemetry   chan event.Event
	sinkTimeout time.Duration
}

func NewEventFanout(log *slog.Logger, sinks []contract.EventSink,
	events, telemetry chan event.Event, sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		sinks:       sinks,
		events:      events,
		telemetry:   telemetry,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
			select {
			case w.telemetry <- evt:
			default:
				w.log.Debug("Observability telemetry event lost")
			}
		}
	}
}

// Fanout delivers one event to every sink concurrently. A slow sink is cut
// off by the per-sink timeout so it cannot stall the whole pipeline.
func (w *EventFanout) Fanout(ctx context.Context, evt event.Event) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := sink.Consume(sinkCtx, evt); err != nil {
				w.log.Warn("Sink failed to consume event", "type", evt.Type, "error", err)
			}
		}()
	}
	wg.Wait()
}
