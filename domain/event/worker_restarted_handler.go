package event

import (
	"fmt"
	"log/slog"
)

// WorkerRestartedHandler is triggered by the Supervisor when a worker
// recovers from a panic. Useful for monitoring the reliability of the intake
// pipeline itself.
type WorkerRestartedHandler struct {
	log     *slog.Logger
	counter *Counter
}

func NewWorkerRestartedHandler(log *slog.Logger, counter *Counter) *WorkerRestartedHandler {
	return &WorkerRestartedHandler{log: log, counter: counter}
}

func (h *WorkerRestartedHandler) Handle(e Event) {
	if e.Type != RestartedAfterPanicType {
		return
	}
	payload, ok := e.Payload.(WorkerRestartedAfterPanic)
	if !ok {
		h.log.Error("invalid payload for worker restart event")
		return
	}
	h.counter.Increment(RestartedAfterPanicType)
	h.log.Debug(fmt.Sprintf("Worker %s restarted after panic, total: %d",
		payload.WorkerName, h.counter.Get(RestartedAfterPanicType)))
}
