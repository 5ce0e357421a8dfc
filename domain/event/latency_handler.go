package event

import (
	"log/slog"
	"time"
)

// LatencyHandler watches dispatch completion times and warns when a message
// took longer than the configured threshold to settle all responder units.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	payload, ok := e.Payload.(DispatchCompleted)
	if !ok {
		return
	}

	h.log.Info("telemetry: dispatch latency",
		"message_id", payload.MessageID,
		"matched", payload.Matched,
		"failed", payload.Failed,
		"lead_time_ms", payload.Elapsed.Milliseconds(),
	)

	if payload.Elapsed > h.latencyThreshold {
		h.log.Warn("high dispatch latency detected", "lead_time", payload.Elapsed)
	}
}
