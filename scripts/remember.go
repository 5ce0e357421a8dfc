package scripts

import (
	"context"
	"fmt"
	"strings"

	"hearsay/brain"
	"hearsay/contract"
	"hearsay/domain"
)

// NewRemember builds the key-value memory script on top of the brain.
// All three responders are respond-style: only a direct mention mutates
// or reads the bot's memory.
func NewRemember(store *brain.Brain, reply ReplyFunc) contract.Script {
	b := NewBase("remember")

	b.Respond(`remember (?P<key>\S+) (?P<value>.+)`, "set",
		"remember <key> <value> - stores a fact",
		"Writes a fact to the durable brain, surviving restarts.",
		func(ctx context.Context, msg domain.Message) error {
			key, _ := msg.Matches.Name("key")
			value, _ := msg.Matches.Name("value")
			if err := store.Set(key, []byte(value)); err != nil {
				return err
			}
			return reply(ctx, msg, fmt.Sprintf("OK, remembering %s", key))
		})

	b.Respond(`what is (?P<key>\S+)\??`, "get",
		"what is <key> - recalls a fact",
		"Reads a fact back from the brain.",
		func(ctx context.Context, msg domain.Message) error {
			key, _ := msg.Matches.Name("key")
			key = strings.TrimSuffix(key, "?")
			value, ok, err := store.Get(key)
			if err != nil {
				return err
			}
			if !ok {
				return reply(ctx, msg, fmt.Sprintf("I don't know anything about %s", key))
			}
			return reply(ctx, msg, fmt.Sprintf("%s is %s", key, value))
		})

	b.Respond(`forget (?P<key>\S+)`, "forget",
		"forget <key> - drops a fact",
		"Removes a fact from the brain.",
		func(ctx context.Context, msg domain.Message) error {
			key, _ := msg.Matches.Name("key")
			if err := store.Delete(key); err != nil {
				return err
			}
			return reply(ctx, msg, fmt.Sprintf("Forgotten: %s", key))
		})

	return b
}
