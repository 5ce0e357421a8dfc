package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hearsay/domain/event"
)

type captureHandler struct {
	received chan event.Event
}

func (h *captureHandler) Handle(e event.Event) {
	h.received <- e
}

func TestTelemetryWorker_RoutesEventsThroughHandlers(t *testing.T) {
	req := require.New(t)

	handler := &captureHandler{received: make(chan event.Event, 8)}
	telemetry := make(chan event.Event, 1)
	worker := NewTelemetryWorker(slog.Default(), time.Hour, telemetry,
		[]event.Handler{handler})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	telemetry <- event.New(event.RestartedAfterPanicType,
		event.WorkerRestartedAfterPanic{WorkerName: "Listener"})

	select {
	case evt := <-handler.received:
		req.Equal(event.RestartedAfterPanicType, evt.Type)
	case <-time.After(1 * time.Second):
		req.Fail("Handler never received the telemetry event")
	}
}

func TestTelemetryWorker_SamplesOwnProcess(t *testing.T) {
	req := require.New(t)

	handler := &captureHandler{received: make(chan event.Event, 8)}
	worker := NewTelemetryWorker(slog.Default(), 20*time.Millisecond,
		make(chan event.Event), []event.Handler{handler})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-handler.received:
			if evt.Type != event.ProcessStatsType {
				continue
			}
			stats, ok := evt.Payload.(event.ProcessStats)
			req.True(ok)
			req.NotZero(stats.PID)
			return
		case <-deadline:
			req.Fail("No process stats sampled in time")
			return
		}
	}
}
