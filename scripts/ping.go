package scripts

import (
	"context"
	"fmt"

	"hearsay/contract"
	"hearsay/domain"
)

// NewPing builds the liveness script: a hear responder anyone can trigger and
// an echo responder demonstrating positional captures.
func NewPing(reply ReplyFunc) contract.Script {
	b := NewBase("ping")

	b.Hear(`\bping\b`, "ping",
		"ping - replies PONG",
		"Cheap liveness check for the dispatch pipeline.",
		func(ctx context.Context, msg domain.Message) error {
			return reply(ctx, msg, "PONG")
		})

	b.Hear(`echo (.+)`, "echo",
		"echo <text> - repeats <text>",
		"Round-trips the captured text, matches anywhere in the message.",
		func(ctx context.Context, msg domain.Message) error {
			text, ok := msg.Matches.Group(1)
			if !ok {
				return fmt.Errorf("echo capture missing")
			}
			return reply(ctx, msg, text)
		})

	return b
}
