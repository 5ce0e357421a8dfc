package runtime

import (
	"context"
	"log/slog"
	"sync"

	"hearsay/contract"
	"hearsay/domain"
	"hearsay/domain/event"
)

// Ensure *Listener implements the contract.Worker interface at compile time.
var _ contract.Worker = (*Listener)(nil)

// Listener consumes inbound events, runs them through the filter chain, and
// hands each accepted message to its own goroutine for dispatch. Intake
// therefore never blocks on handler execution, and one message blowing up
// entirely does not stop the next one from being accepted.
//
// Messages race each other by design: there is no cross-message queueing or
// backpressure. Known scalability limit, kept on purpose.
type Listener struct {
	log        *slog.Logger
	inbound    chan domain.Message
	dispatcher contract.IDispatcher
	filters    []contract.Filter
	events     chan event.Event
	wg         sync.WaitGroup
}

func NewListener(log *slog.Logger, inbound chan domain.Message,
	dispatcher contract.IDispatcher, filters []contract.Filter,
	events chan event.Event) *Listener {
	return &Listener{
		log:        log,
		inbound:    inbound,
		dispatcher: dispatcher,
		filters:    filters,
		events:     events,
	}
}

func (l *Listener) Run(ctx context.Context) error {
	defer l.wg.Wait()

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("Context done, stopping listener")
			return nil
		case msg, ok := <-l.inbound:
			if !ok {
				l.log.Debug("Inbound channel is closed")
				return nil
			}
			l.accept(ctx, msg)
		}
	}
}

func (l *Listener) accept(ctx context.Context, msg domain.Message) {
	filtered, ok := l.filter(msg)
	if !ok {
		// Rejection is not a failure, nothing log-worthy happened
		l.emit(event.New(event.MessageRejectedType, event.MessageRejected{
			MessageID: msg.ID,
			Kind:      msg.Kind,
			Reason:    "filtered",
		}))
		return
	}

	l.emit(event.New(event.MessageAcceptedType, event.MessageAccepted{
		MessageID: filtered.ID,
		Kind:      filtered.Kind,
	}))

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() {
			if rec := recover(); rec != nil {
				l.log.Error("Dispatch unit panicked", "message_id", filtered.ID, "panic", rec)
			}
		}()
		l.dispatcher.Dispatch(ctx, filtered)
	}()
}

// filter runs the chain in order. A stage may transform the message; the
// first stage to refuse it wins.
func (l *Listener) filter(msg domain.Message) (domain.Message, bool) {
	current := msg
	for _, f := range l.filters {
		next, ok := f.Apply(current)
		if !ok {
			return current, false
		}
		current = next
	}
	return current, true
}

func (l *Listener) emit(evt event.Event) {
	if l.events == nil {
		return
	}
	select {
	case l.events <- evt:
	default:
		l.log.Debug("Engine event lost", "type", evt.Type)
	}
}
