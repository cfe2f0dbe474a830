// Package randomword provides random English words for quizzes.
package randomword

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

//go:embed words.txt
var wordsFile string

// Source returns random words from a fixed list
type Source struct {
	words []string
}

// NewSource creates a source backed by the embedded word list
func NewSource() *Source {
	return NewSourceFromList(parseWords(wordsFile))
}

// NewSourceFromList creates a source backed by words; duplicates are dropped
func NewSourceFromList(words []string) *Source {
	return &Source{words: lo.Uniq(words)}
}

// Words returns n distinct random words
func (s *Source) Words(ctx context.Context, n int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n < 0 || n > len(s.words) {
		return nil, fmt.Errorf("requested %d words, only %d available", n, len(s.words))
	}
	return lo.Samples(s.words, n), nil
}

// Size returns number of known words
func (s *Source) Size() int {
	return len(s.words)
}

func parseWords(data string) []string {
	var words []string
	for _, line := range strings.Split(data, "\n") {
		if w := strings.TrimSpace(strings.ToLower(line)); w != "" {
			words = append(words, w)
		}
	}
	return words
}
