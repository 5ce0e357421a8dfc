package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hearsay/domain"
)

func TestTextFilter(t *testing.T) {
	req := require.New(t)

	_, ok := TextFilter{}.Apply(domain.NewMessage("message", ""))
	req.False(ok)

	_, ok = TextFilter{}.Apply(domain.NewMessage("message", "ping"))
	req.True(ok)
}

func TestKindFilter(t *testing.T) {
	req := require.New(t)
	filter := NewKindFilter("message")

	_, ok := filter.Apply(domain.NewMessage("reaction", "ping"))
	req.False(ok)

	_, ok = filter.Apply(domain.NewMessage("message", "ping"))
	req.True(ok)
}

func TestLanguageFilter_AnnotatesDetectedLanguage(t *testing.T) {
	req := require.New(t)
	filter := NewLanguageFilter()

	msg, ok := filter.Apply(domain.NewMessage("message",
		"this is a perfectly ordinary english sentence about nothing"))
	req.True(ok)
	req.NotEmpty(msg.Fields["lang"])
}

func TestLanguageFilter_AllowListRejects(t *testing.T) {
	req := require.New(t)
	// "xx" is not a language whatlanggo will ever detect
	filter := NewLanguageFilter("xx")

	_, ok := filter.Apply(domain.NewMessage("message",
		"this is a perfectly ordinary english sentence about nothing"))
	req.False(ok)
}
