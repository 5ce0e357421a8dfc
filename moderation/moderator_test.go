package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"hearsay/domain"
)

const replacementChar = '*'

// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	dictionary := []string{"badger", "snake"}
	mod, err := NewModerator(dictionary, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences",
			input:    "badger badger",
			expected: "****** ******",
			words:    []string{"badger", "badger"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Look at B.4.d.g.€r !",
			expected: "Look at ********** !",
			words:    []string{"badger"},
		},
		{
			name:     "Uppercase and noise",
			input:    "S-N-A-K-E is here",
			expected: "********* is here",
			words:    []string{"snake"},
		},
		{
			name:     "Clean text untouched",
			input:    "nothing to see",
			expected: "nothing to see",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			censored, found := mod.Censor(tt.input)
			req.Equal(tt.expected, censored)
			req.Equal(tt.words, found)
		})
	}
}

func TestFilter_AnnotatesWithoutRejecting(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	mod, err := NewModerator([]string{"badger"}, replacementChar, log)
	req.NoError(err)

	filter := NewFilter(mod)

	msg := domain.NewMessage("message", "release the badger")
	filtered, ok := filter.Apply(msg)
	req.True(ok)
	req.Equal("release the ******", filtered.Text)
	req.Equal([]string{"badger"}, filtered.Fields["censored_words"])

	// The original message is untouched
	req.Equal("release the badger", msg.Text)
}

func TestLoadWords_EmbeddedLists(t *testing.T) {
	req := require.New(t)
	data, err := LoadWords()
	req.NoError(err)
	req.Contains(data.Languages, "en")
	req.Contains(data.Languages, "fr")
	req.Contains(data.Words, "badger")
	req.NotContains(data.Words, "# demo word list, replace with a real one")
}
