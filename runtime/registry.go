// Package runtime wires scripts, patterns, and workers into a running engine.
// It orchestrates dispatch without containing pattern or script logic itself.
package runtime

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"hearsay/contract"
	"hearsay/domain"
	"hearsay/errors"
	"hearsay/pattern"
)

// Registry aggregates compiled responder descriptors from scripts.
// Register is called once during startup; afterwards the descriptor list is
// frozen and shared read-only across all dispatch units.
type Registry struct {
	log        *slog.Logger
	identity   domain.Identity
	responders []domain.Responder
	handlers   map[string]domain.HandlerFunc // "script/id" -> resolved callback
}

func NewRegistry(log *slog.Logger, identity domain.Identity) *Registry {
	return &Registry{
		log:      log,
		identity: identity,
		handlers: make(map[string]domain.HandlerFunc),
	}
}

// Register compiles every responder definition of the given scripts, in
// order. Any failure here is fatal to startup: a malformed pattern, a respond
// definition without a bot name, a definition bound to no handler, or two
// definitions from the same script sharing (pattern source, id).
func (r *Registry) Register(scripts ...contract.Script) error {
	for _, script := range scripts {
		if err := r.register(script); err != nil {
			return err
		}
	}

	sources := lo.Map(r.responders, func(resp domain.Responder, _ int) string {
		return fmt.Sprintf("%s/%s", resp.Script, resp.ID)
	})
	r.log.Info(fmt.Sprintf("%d responders registered", len(r.responders)), "responders", sources)
	return nil
}

func (r *Registry) register(script contract.Script) error {
	seen := make(map[string]struct{})

	for _, def := range script.Definitions() {
		compiled, err := r.compile(def)
		if err != nil {
			return fmt.Errorf("script %s: %w", script.Name(), err)
		}

		key := def.Pattern + "\x00" + def.ID
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: script %s, pattern %q, id %q",
				errors.ErrDuplicateResponder, script.Name(), def.Pattern, def.ID)
		}
		seen[key] = struct{}{}

		// Resolve the callback now: dispatch must never pay a lookup,
		// and a dangling id must fail before any traffic.
		handle, err := script.Handler(def.ID)
		if err != nil {
			return fmt.Errorf("script %s, id %q: %w", script.Name(), def.ID, err)
		}

		r.responders = append(r.responders, domain.Responder{
			Pattern: compiled,
			Script:  script.Name(),
			ID:      def.ID,
			Usage:   def.Usage,
			Help:    def.Help,
			Handle:  handle,
		})
		r.handlers[script.Name()+"/"+def.ID] = handle
	}
	return nil
}

func (r *Registry) compile(def domain.Definition) (*pattern.Compiled, error) {
	switch def.Type {
	case domain.RespondType:
		return pattern.Respond(def.Pattern, r.identity.Name, r.identity.Alias)
	default:
		return pattern.Hear(def.Pattern)
	}
}

// All returns the responders in registration order. The slice is read-only
// for callers.
func (r *Registry) All() []domain.Responder {
	return r.responders
}

// Lookup returns the handler resolved at registration time for (script, id).
func (r *Registry) Lookup(script, id string) (domain.HandlerFunc, error) {
	handle, ok := r.handlers[script+"/"+id]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", errors.ErrUnknownHandler, script, id)
	}
	return handle, nil
}
