package domain

import (
	"context"

	"hearsay/pattern"
)

// HandlerFunc is the callback bound to a responder. The engine ignores any
// meaningful return value: side effects are the point. A non-nil error (or a
// panic) is reported and contained to this invocation.
type HandlerFunc func(ctx context.Context, msg Message) error

type ResponderType string

const (
	HearType    ResponderType = "hear"
	RespondType ResponderType = "respond"
)

// Definition is the declarative form of a responder, assembled by a script
// during its own initialization and compiled once at registration.
type Definition struct {
	Type    ResponderType
	Pattern string // raw regex source, before any mention rewriting
	ID      string // unique within the owning script
	Usage   string // one-line invocation hint, e.g. "ping - replies PONG"
	Help    string // longer description, indexed for help search
}

// Responder is an immutable compiled responder descriptor. Instances are
// created once at startup, shared read-only across all dispatch units, and
// live for the process lifetime.
type Responder struct {
	Pattern *pattern.Compiled
	Script  string
	ID      string
	Usage   string
	Help    string
	Handle  HandlerFunc
}
