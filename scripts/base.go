// Package scripts contains the handler modules shipped with the engine and
// the builder they use to declare responders.
package scripts

import (
	"context"
	"fmt"

	"hearsay/contract"
	"hearsay/domain"
	"hearsay/errors"
)

// ReplyFunc delivers a handler's output back to the originating platform.
// The engine itself never looks at replies; they are a script-side effect.
type ReplyFunc func(ctx context.Context, msg domain.Message, text string) error

var _ contract.Script = (*Base)(nil)

// Base is the builder scripts use during their own initialization: mutable
// while the script assembles its responders, then handed to the registry and
// treated as frozen. Declaration order is preserved.
type Base struct {
	name     string
	defs     []domain.Definition
	handlers map[string]domain.HandlerFunc
}

func NewBase(name string) *Base {
	return &Base{name: name, handlers: make(map[string]domain.HandlerFunc)}
}

// Hear declares a responder matching anywhere in the message text.
func (b *Base) Hear(pattern, id, usage, help string, handle domain.HandlerFunc) *Base {
	return b.add(domain.HearType, pattern, id, usage, help, handle)
}

// Respond declares a responder that only fires on a bot mention.
func (b *Base) Respond(pattern, id, usage, help string, handle domain.HandlerFunc) *Base {
	return b.add(domain.RespondType, pattern, id, usage, help, handle)
}

func (b *Base) add(t domain.ResponderType, pattern, id, usage, help string, handle domain.HandlerFunc) *Base {
	b.defs = append(b.defs, domain.Definition{
		Type:    t,
		Pattern: pattern,
		ID:      id,
		Usage:   usage,
		Help:    help,
	})
	b.handlers[id] = handle
	return b
}

func (b *Base) Name() string { return b.name }

func (b *Base) Definitions() []domain.Definition { return b.defs }

func (b *Base) Handler(id string) (domain.HandlerFunc, error) {
	handle, ok := b.handlers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", errors.ErrUnknownHandler, b.name, id)
	}
	return handle, nil
}
