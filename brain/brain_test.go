package brain

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestBrain(t *testing.T) *Brain {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBrain(db, slog.Default())
}

func TestBrain_SetAndGet(t *testing.T) {
	req := require.New(t)
	b := openTestBrain(t)

	req.NoError(b.Set("coffee", []byte("black")))

	value, ok, err := b.Get("coffee")
	req.NoError(err)
	req.True(ok)
	req.Equal([]byte("black"), value)
}

func TestBrain_GetMissingKey(t *testing.T) {
	req := require.New(t)
	b := openTestBrain(t)

	_, ok, err := b.Get("nothing-here")
	req.NoError(err)
	req.False(ok)
}

// An empty stored value and a missing key must stay distinguishable.
func TestBrain_EmptyValueIsNotMissing(t *testing.T) {
	req := require.New(t)
	b := openTestBrain(t)

	req.NoError(b.Set("empty", []byte{}))

	value, ok, err := b.Get("empty")
	req.NoError(err)
	req.True(ok)
	req.Empty(value)
}

func TestBrain_Delete(t *testing.T) {
	req := require.New(t)
	b := openTestBrain(t)

	req.NoError(b.Set("doomed", []byte("soon")))
	req.NoError(b.Delete("doomed"))

	_, ok, err := b.Get("doomed")
	req.NoError(err)
	req.False(ok)
}

func TestBrain_KeysPrefixScan(t *testing.T) {
	req := require.New(t)
	b := openTestBrain(t)

	req.NoError(b.Set("fact:sky", []byte("blue")))
	req.NoError(b.Set("fact:grass", []byte("green")))
	req.NoError(b.Set("quote:1", []byte("so it goes")))

	keys, err := b.Keys("fact:")
	req.NoError(err)
	req.ElementsMatch([]string{"fact:sky", "fact:grass"}, keys)

	all, err := b.Keys("")
	req.NoError(err)
	req.Len(all, 3)
}
