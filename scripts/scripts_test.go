package scripts

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"hearsay/brain"
	"hearsay/domain"
	"hearsay/helpindex"
	"hearsay/pattern"
)

// recorder collects replies sent by handlers under test.
type recorder struct {
	mu      sync.Mutex
	replies []string
}

func (r *recorder) reply(_ context.Context, _ domain.Message, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies = append(r.replies, text)
	return nil
}

// invoke compiles the definition the way the registry would and calls the
// script's handler with a matched message copy.
func invoke(t *testing.T, script interface {
	Definitions() []domain.Definition
	Handler(id string) (domain.HandlerFunc, error)
}, id, text string, identity domain.Identity) {
	t.Helper()
	req := require.New(t)

	for _, def := range script.Definitions() {
		if def.ID != id {
			continue
		}
		var compiled *pattern.Compiled
		var err error
		if def.Type == domain.RespondType {
			compiled, err = pattern.Respond(def.Pattern, identity.Name, identity.Alias)
		} else {
			compiled, err = pattern.Hear(def.Pattern)
		}
		req.NoError(err)

		caps, ok := compiled.Find(text)
		req.True(ok, "pattern %q should match %q", def.Pattern, text)

		handle, err := script.Handler(id)
		req.NoError(err)
		req.NoError(handle(context.Background(), domain.NewMessage("message", text).WithMatches(caps)))
		return
	}
	t.Fatalf("no definition with id %q", id)
}

func TestPing_RepliesPong(t *testing.T) {
	req := require.New(t)
	rec := &recorder{}
	script := NewPing(rec.reply)

	invoke(t, script, "ping", "ping", domain.Identity{})
	req.Equal([]string{"PONG"}, rec.replies)
}

func TestPing_EchoCapturesText(t *testing.T) {
	req := require.New(t)
	rec := &recorder{}
	script := NewPing(rec.reply)

	invoke(t, script, "echo", "please echo all of this", domain.Identity{})
	req.Equal([]string{"all of this"}, rec.replies)
}

func TestRemember_RoundTrip(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	rec := &recorder{}
	identity := domain.Identity{Name: "zen"}
	script := NewRemember(brain.NewBrain(db, slog.Default()), rec.reply)

	invoke(t, script, "set", "zen: remember coffee black", identity)
	invoke(t, script, "get", "zen: what is coffee?", identity)
	invoke(t, script, "forget", "zen: forget coffee", identity)
	invoke(t, script, "get", "zen: what is coffee?", identity)

	req.Equal([]string{
		"OK, remembering coffee",
		"coffee is black",
		"Forgotten: coffee",
		"I don't know anything about coffee",
	}, rec.replies)
}

func TestHelp_ListsAndSearches(t *testing.T) {
	req := require.New(t)
	idx, err := helpindex.OpenInMemory(slog.Default())
	req.NoError(err)
	defer idx.Close()

	req.NoError(idx.Add([]domain.Responder{
		{Script: "ping", ID: "ping", Usage: "ping - replies PONG", Help: "liveness check"},
		{Script: "remember", ID: "set", Usage: "remember <key> <value> - stores a fact", Help: "durable storage"},
	}))

	rec := &recorder{}
	identity := domain.Identity{Name: "zen"}
	usages := func() []string {
		return []string{"ping - replies PONG", "remember <key> <value> - stores a fact"}
	}
	script := NewHelp(idx, usages, rec.reply)

	invoke(t, script, "help", "zen: help", identity)
	req.Contains(rec.replies[0], "ping - replies PONG")
	req.Contains(rec.replies[0], "remember <key> <value> - stores a fact")

	invoke(t, script, "help", "zen: help liveness", identity)
	req.Equal("ping - replies PONG", rec.replies[1])

	invoke(t, script, "help", "zen: help nonsensequery", identity)
	req.Contains(rec.replies[2], "nothing matches")
}
