package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessageAcceptedType     Type = "MESSAGE_ACCEPTED"
	MessageRejectedType     Type = "MESSAGE_REJECTED"
	HandlerInvokedType      Type = "HANDLER_INVOKED"
	HandlerFailedType       Type = "HANDLER_FAILED"
	DispatchCompletedType   Type = "DISPATCH_COMPLETED"
	RestartedAfterPanicType Type = "WORKER_RESTARTED_AFTER_PANIC"
	ProcessStatsType        Type = "PROCESS_STATS"
)

// Event is the envelope broadcast to sinks and telemetry handlers.
// Delivery is best effort: events exist for observability, never for
// core dispatch decisions.
type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

type MessageAccepted struct {
	MessageID uuid.UUID
	Kind      string
}

type MessageRejected struct {
	MessageID uuid.UUID
	Kind      string
	Reason    string
}

type HandlerInvoked struct {
	MessageID uuid.UUID
	Script    string
	Handler   string
	Elapsed   time.Duration
}

type HandlerFailed struct {
	MessageID uuid.UUID
	Script    string
	Handler   string
	Err       string
}

type DispatchCompleted struct {
	MessageID uuid.UUID
	Matched   int
	Failed    int
	Elapsed   time.Duration
}

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ProcessStats struct {
	PID    int32
	Status string
	Cpu    float64
	Ram    float32
}
