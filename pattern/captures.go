package pattern

// Capture is one positional group result. Present distinguishes a group that
// captured the empty string from a group that did not participate at all.
type Capture struct {
	Value   string
	Present bool
}

// Captures is the per-match result of a pattern. Exactly one of Named or
// Groups is populated: the mode follows the compiled pattern, never the input.
//
// In positional mode Groups[0] is always the full matched substring.
// In named mode only the groups that participated in the match are present.
type Captures struct {
	Named  map[string]string
	Groups []Capture
}

// IsNamed reports whether the mapping uses group names as keys.
func (c Captures) IsNamed() bool { return c.Named != nil }

// Group returns the positional capture at index i.
func (c Captures) Group(i int) (string, bool) {
	if i < 0 || i >= len(c.Groups) || !c.Groups[i].Present {
		return "", false
	}
	return c.Groups[i].Value, true
}

// Name returns the named capture for key.
func (c Captures) Name(key string) (string, bool) {
	v, ok := c.Named[key]
	return v, ok
}

// Find runs the pattern against text once, returning the capture mapping and
// whether the pattern matched at all. The single submatch scan serves both as
// the match test and the extraction, so dispatch never evaluates a regex twice.
func (c *Compiled) Find(text string) (Captures, bool) {
	loc := c.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return Captures{}, false
	}
	return c.fromIndexes(text, loc), true
}

// Extract returns the capture mapping for text. It must only be called after
// a match has been confirmed; the precondition is not re-checked here.
func (c *Compiled) Extract(text string) Captures {
	caps, _ := c.Find(text)
	return caps
}

func (c *Compiled) fromIndexes(text string, loc []int) Captures {
	if c.named {
		named := make(map[string]string)
		for i, name := range c.re.SubexpNames() {
			if name == "" || loc[2*i] < 0 {
				continue
			}
			named[name] = text[loc[2*i]:loc[2*i+1]]
		}
		return Captures{Named: named}
	}

	groups := make([]Capture, 0, c.re.NumSubexp()+1)
	for i := 0; i <= c.re.NumSubexp(); i++ {
		if loc[2*i] < 0 {
			groups = append(groups, Capture{})
			continue
		}
		groups = append(groups, Capture{Value: text[loc[2*i]:loc[2*i+1]], Present: true})
	}
	return Captures{Groups: groups}
}
