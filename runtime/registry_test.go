package runtime

import (
	"context"
	"log/slog"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"hearsay/domain"
	"hearsay/errors"
	"hearsay/scripts"
)

func noop(_ context.Context, _ domain.Message) error { return nil }

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	req := require.New(t)

	first := scripts.NewBase("first").
		Hear(`alpha`, "a", "", "", noop).
		Respond(`beta`, "b", "", "", noop)
	second := scripts.NewBase("second").
		Hear(`gamma`, "c", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{Name: "zen"})
	req.NoError(registry.Register(first, second))

	ids := lo.Map(registry.All(), func(r domain.Responder, _ int) string {
		return r.Script + "/" + r.ID
	})
	req.Equal([]string{"first/a", "first/b", "second/c"}, ids)
}

func TestRegistry_DuplicateResponderIsFatal(t *testing.T) {
	req := require.New(t)

	dup := scripts.NewBase("dup").
		Hear(`ping`, "ping", "", "", noop).
		Hear(`ping`, "ping", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{Name: "zen"})
	req.ErrorIs(registry.Register(dup), errors.ErrDuplicateResponder)
}

// The same pattern under a different id is a legitimate registration.
func TestRegistry_SamePatternDifferentID(t *testing.T) {
	req := require.New(t)

	twice := scripts.NewBase("twice").
		Hear(`ping`, "first", "", "", noop).
		Hear(`ping`, "second", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{Name: "zen"})
	req.NoError(registry.Register(twice))
	req.Len(registry.All(), 2)
}

func TestRegistry_RespondWithoutBotNameIsFatal(t *testing.T) {
	req := require.New(t)

	script := scripts.NewBase("status").
		Respond(`status`, "status", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{})
	req.ErrorIs(registry.Register(script), errors.ErrMissingBotName)
}

func TestRegistry_MalformedPatternIsFatal(t *testing.T) {
	req := require.New(t)

	script := scripts.NewBase("broken").
		Hear(`(unclosed`, "broken", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{Name: "zen"})
	req.Error(registry.Register(script))
}

func TestRegistry_Lookup(t *testing.T) {
	req := require.New(t)

	script := scripts.NewBase("ping").
		Hear(`ping`, "ping", "", "", noop)

	registry := NewRegistry(slog.Default(), domain.Identity{Name: "zen"})
	req.NoError(registry.Register(script))

	handle, err := registry.Lookup("ping", "ping")
	req.NoError(err)
	req.NotNil(handle)

	_, err = registry.Lookup("ping", "ghost")
	req.ErrorIs(err, errors.ErrUnknownHandler)
}
