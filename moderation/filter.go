package moderation

import (
	"hearsay/contract"
	"hearsay/domain"
)

var _ contract.Filter = (*Filter)(nil)

// Filter plugs the moderator into the listener's intake chain. It never
// rejects: the message continues with censored text and an annotation
// listing what was hit.
type Filter struct {
	moderator Moderator
}

func NewFilter(moderator Moderator) *Filter {
	return &Filter{moderator: moderator}
}

func (f *Filter) Apply(msg domain.Message) (domain.Message, bool) {
	censored, found := f.moderator.Censor(msg.Text)
	if len(found) == 0 {
		return msg, true
	}
	annotated := msg.WithField("censored_words", found)
	annotated.Text = censored
	return annotated, true
}
