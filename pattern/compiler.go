// Package pattern compiles responder patterns and extracts capture groups.
// Compilation happens once at registration; everything here is immutable
// afterwards and safe to share across concurrent dispatch units.
package pattern

import (
	"fmt"
	"hearsay/errors"
	"regexp"
	"strings"
)

// Compiled is an immutable responder pattern.
// Whether the pattern uses named or positional captures is a static property,
// resolved once here so that match-time code never re-inspects the expression.
type Compiled struct {
	re    *regexp.Regexp
	src   string
	named bool
}

// Hear compiles a pattern that matches anywhere in the message text.
func Hear(src string) (*Compiled, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling hear pattern %q: %w", src, err)
	}
	return newCompiled(re, src), nil
}

// Respond wraps src so it only matches when the message starts, after optional
// leading whitespace, with an optional '@', the bot name or alias, an optional
// ':' or ',' separator and at least one whitespace character.
//
// The longer of name/alias is always tried first in the alternation: if the
// shorter one is a prefix of the longer one, accepting it first would leave
// the unmatched tail of the mention in front of the wrapped pattern.
func Respond(src, name, alias string) (*Compiled, error) {
	if name == "" {
		return nil, fmt.Errorf("%w (pattern %q)", errors.ErrMissingBotName, src)
	}

	prefixes := []string{name}
	if alias != "" {
		prefixes = append(prefixes, alias)
	}
	if len(prefixes) == 2 && len(prefixes[1]) > len(prefixes[0]) {
		prefixes[0], prefixes[1] = prefixes[1], prefixes[0]
	}

	alts := make([]string, len(prefixes))
	for i, p := range prefixes {
		alts[i] = regexp.QuoteMeta(p) + "[:,]?"
	}

	wrapped := fmt.Sprintf(`^\s*@?(?:%s)\s+(?:%s)`, strings.Join(alts, "|"), src)
	re, err := regexp.Compile(wrapped)
	if err != nil {
		return nil, fmt.Errorf("compiling respond pattern %q: %w", src, err)
	}
	return newCompiled(re, src), nil
}

func newCompiled(re *regexp.Regexp, src string) *Compiled {
	named := false
	for _, n := range re.SubexpNames() {
		if n != "" {
			named = true
			break
		}
	}
	return &Compiled{re: re, src: src, named: named}
}

// Source returns the pattern as written by the script author,
// without the mention prefix added by Respond.
func (c *Compiled) Source() string { return c.src }

// Named reports whether the pattern declares named capture groups.
func (c *Compiled) Named() bool { return c.named }

// Match reports whether text matches the pattern.
func (c *Compiled) Match(text string) bool { return c.re.MatchString(text) }
