package runtime

import (
	"context"
	"fmt"
	"log/slog"
	goruntime "runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"hearsay/contract"
	"hearsay/domain"
	"hearsay/domain/event"
	"hearsay/errors"
)

// Dispatcher fans one accepted message out to every registered responder.
// Matching and extraction are synchronous; only the handler callback is a
// suspension point. Concurrency within one message is bounded by limit,
// defaulting to the number of CPUs.
type Dispatcher struct {
	log      *slog.Logger
	registry contract.IRegistry
	limit    int
	events   chan event.Event
}

func NewDispatcher(log *slog.Logger, registry contract.IRegistry, limit int, events chan event.Event) *Dispatcher {
	if limit <= 0 {
		limit = goruntime.NumCPU()
	}
	return &Dispatcher{log: log, registry: registry, limit: limit, events: events}
}

// Dispatch schedules one unit of work per responder and returns only after
// all of them have settled. A failing handler is contained inside its own
// unit: it never cancels siblings, never aborts the message, and never
// reaches the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, msg domain.Message) {
	start := time.Now()
	results := make(chan error, len(d.registry.All()))

	g := new(errgroup.Group)
	g.SetLimit(d.limit)
	for _, responder := range d.registry.All() {
		g.Go(func() error {
			matched, err := d.invoke(ctx, responder, msg)
			if matched {
				results <- err
			}
			// Unit errors are already contained and reported. Returning
			// one here would make errgroup cancel nothing we want canceled.
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	matched, failed := 0, 0
	for err := range results {
		matched++
		if err != nil {
			failed++
		}
	}

	d.emit(event.New(event.DispatchCompletedType, event.DispatchCompleted{
		MessageID: msg.ID,
		Matched:   matched,
		Failed:    failed,
		Elapsed:   time.Since(start),
	}))
}

// invoke is one responder unit: match, extract, copy, call.
// The reported bool is whether the pattern matched at all.
func (d *Dispatcher) invoke(ctx context.Context, responder domain.Responder, msg domain.Message) (bool, error) {
	caps, ok := responder.Pattern.Find(msg.Text)
	if !ok {
		return false, nil
	}

	start := time.Now()
	err := d.callHandler(ctx, responder, msg.WithMatches(caps))
	if err != nil {
		d.log.Error("Handler failed",
			"script", responder.Script, "id", responder.ID,
			"message_id", msg.ID, "error", err)
		d.emit(event.New(event.HandlerFailedType, event.HandlerFailed{
			MessageID: msg.ID,
			Script:    responder.Script,
			Handler:   responder.ID,
			Err:       err.Error(),
		}))
		return true, err
	}

	d.emit(event.New(event.HandlerInvokedType, event.HandlerInvoked{
		MessageID: msg.ID,
		Script:    responder.Script,
		Handler:   responder.ID,
		Elapsed:   time.Since(start),
	}))
	return true, nil
}

// callHandler converts a handler panic into a contained error.
func (d *Dispatcher) callHandler(ctx context.Context, responder domain.Responder, msg domain.Message) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", errors.ErrHandlerPanic, rec)
		}
	}()
	return responder.Handle(ctx, msg)
}

// emit pushes an engine event without ever blocking dispatch.
func (d *Dispatcher) emit(evt event.Event) {
	if d.events == nil {
		return
	}
	select {
	case d.events <- evt:
	default:
		d.log.Debug("Engine event lost", "type", evt.Type)
	}
}
