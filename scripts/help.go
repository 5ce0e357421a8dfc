package scripts

import (
	"context"
	"fmt"
	"strings"

	"hearsay/contract"
	"hearsay/domain"
	"hearsay/helpindex"
)

const maxHelpResults = 10

// NewHelp builds the help script. Without a query it lists every usage line;
// with a query it searches the full-text index built from the registry.
// The usage provider is read at invocation time, after registration froze
// the responder list.
func NewHelp(index *helpindex.Index, usages func() []string, reply ReplyFunc) contract.Script {
	b := NewBase("help")

	b.Respond(`help(?:\s+(?P<query>.+))?`, "help",
		"help [query] - lists or searches available commands",
		"Searches usage and help text of every registered responder.",
		func(ctx context.Context, msg domain.Message) error {
			query, ok := msg.Matches.Name("query")
			if !ok {
				return reply(ctx, msg, strings.Join(usages(), "\n"))
			}

			entries, err := index.Search(ctx, query, maxHelpResults)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				return reply(ctx, msg, fmt.Sprintf("nothing matches %q", query))
			}

			lines := make([]string, len(entries))
			for i, e := range entries {
				lines[i] = e.Usage
			}
			return reply(ctx, msg, strings.Join(lines, "\n"))
		})

	return b
}
