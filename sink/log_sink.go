package sink

import (
	"context"
	"log/slog"

	"hearsay/contract"
	"hearsay/domain/event"
)

var _ contract.EventSink = (*LogSink)(nil)

// LogSink writes every engine event to structured logs.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Consume(_ context.Context, e event.Event) error {
	switch payload := e.Payload.(type) {
	case event.HandlerFailed:
		s.log.Warn("Engine event",
			"type", e.Type, "script", payload.Script,
			"handler", payload.Handler, "error", payload.Err)
	case event.HandlerInvoked:
		s.log.Info("Engine event",
			"type", e.Type, "script", payload.Script,
			"handler", payload.Handler, "elapsed", payload.Elapsed)
	default:
		s.log.Debug("Engine event", "type", e.Type)
	}
	return nil
}
