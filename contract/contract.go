//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"hearsay/domain"
	"hearsay/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Script is a handler module: an ordered, immutable set of responder
// definitions plus the callbacks they bind to. Handlers are resolved once at
// registration time, never re-resolved per call.
type Script interface {
	Name() string
	Definitions() []domain.Definition
	Handler(id string) (domain.HandlerFunc, error)
}

type IRegistry interface {
	All() []domain.Responder
	Lookup(script, id string) (domain.HandlerFunc, error)
}

type IDispatcher interface {
	Dispatch(ctx context.Context, msg domain.Message)
}

// Filter is one stage of the intake chain. It may transform the message
// (annotation, censoring) and decides whether intake continues. A rejection
// is not an error: the message is silently dropped.
type Filter interface {
	Apply(msg domain.Message) (domain.Message, bool)
}

type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}
