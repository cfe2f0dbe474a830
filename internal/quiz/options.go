package quiz

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// DecoyCount is the number of wrong options per question
const DecoyCount = 3

// ErrNotEnoughDecoys means the batch has too few distinct wrong answers
var ErrNotEnoughDecoys = errors.New("not enough distinct meanings for decoys")

// BuildOptions returns the shuffled options for meanings[idx]: the correct
// meaning plus DecoyCount distinct other meanings sampled from the batch.
func BuildOptions(meanings []string, idx int) ([]string, error) {
	if idx < 0 || idx >= len(meanings) {
		return nil, fmt.Errorf("option index %d out of range [0, %d)", idx, len(meanings))
	}

	correct := meanings[idx]

	others := lo.Uniq(lo.Filter(meanings, func(m string, _ int) bool {
		return m != correct
	}))
	if len(others) < DecoyCount {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughDecoys, len(others), DecoyCount)
	}

	options := append(lo.Samples(others, DecoyCount), correct)
	return lo.Shuffle(options), nil
}
