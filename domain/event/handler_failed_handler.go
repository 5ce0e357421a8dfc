package event

import (
	"fmt"
	"log/slog"
)

// HandlerFailedHandler counts responder callbacks that returned an error or
// panicked. It is triggered by the dispatcher after the failure has already
// been contained, so this is pure observability.
type HandlerFailedHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewHandlerFailedHandler(log *slog.Logger, counter *Counter) *HandlerFailedHandler {
	return &HandlerFailedHandler{log: log, counter: counter}
}

func (h *HandlerFailedHandler) Handle(e Event) {
	if e.Type != HandlerFailedType {
		return
	}
	payload, ok := e.Payload.(HandlerFailed)
	if !ok {
		h.log.Error("invalid payload for handler failure event")
		return
	}
	h.counter.Increment(HandlerFailedType)
	h.log.Debug(fmt.Sprintf("Handler %s/%s failed, total: %d",
		payload.Script, payload.Handler, h.counter.Get(HandlerFailedType)))
}
