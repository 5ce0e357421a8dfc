package runtime

import (
	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
	"hearsay/contract"
	"hearsay/domain"
)

// TextFilter is the minimal acceptance invariant: an inbound event without a
// usable text field is silently dropped.
type TextFilter struct{}

func (TextFilter) Apply(msg domain.Message) (domain.Message, bool) {
	return msg, msg.Text != ""
}

// KindFilter restricts intake to one event kind, typically "message".
// Repository snapshots disagree on whether this check belongs to the core, so
// it ships as an optional stage rather than being baked into the listener.
type KindFilter struct {
	Kind string
}

func NewKindFilter(kind string) KindFilter {
	return KindFilter{Kind: kind}
}

func (f KindFilter) Apply(msg domain.Message) (domain.Message, bool) {
	return msg, msg.Kind == f.Kind
}

// LanguageFilter annotates every message with its detected language and,
// when an allow list is configured, refuses the rest.
type LanguageFilter struct {
	allowed []string
}

func NewLanguageFilter(allowed ...string) LanguageFilter {
	return LanguageFilter{allowed: allowed}
}

func (f LanguageFilter) Apply(msg domain.Message) (domain.Message, bool) {
	info := whatlanggo.Detect(msg.Text)
	lang := info.Lang.Iso6391()
	annotated := msg.WithField("lang", lang)

	if len(f.allowed) == 0 {
		return annotated, true
	}
	return annotated, lo.Contains(f.allowed, lang)
}

var (
	_ contract.Filter = TextFilter{}
	_ contract.Filter = KindFilter{}
	_ contract.Filter = LanguageFilter{}
)
