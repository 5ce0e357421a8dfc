// Package brain gives scripts a durable key-value store. Handler state
// survives restarts; inbound messages themselves are never persisted here.
package brain

import (
	std "errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const keyPrefix = "brain:"

type Brain struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBrain(db *badger.DB, log *slog.Logger) *Brain {
	return &Brain{db: db, log: log}
}

// Set stores value under key. Keys are namespaced so the brain can share a
// database with other components without collisions.
func (b *Brain) Set(key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+key), value)
	})
}

// Get retrieves the value stored under key. The boolean distinguishes a
// missing key from an empty stored value.
func (b *Brain) Get(key string) ([]byte, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if std.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("brain get %q: %w", key, err)
	}
	return value, true, nil
}

func (b *Brain) Delete(key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + key))
	})
}

// Keys lists all stored keys sharing the given prefix, namespace stripped.
func (b *Brain) Keys(prefix string) ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		scan := []byte(keyPrefix + prefix)
		for it.Seek(scan); it.ValidForPrefix(scan); it.Next() {
			keys = append(keys, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("brain keys %q: %w", prefix, err)
	}
	return keys, nil
}
