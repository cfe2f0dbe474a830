package quiz

import (
	"fmt"

	"vocaquiz/internal/domain"
)

// CountMatches returns number of positions where chosen equals correct
func CountMatches(chosen, correct []string) (int, error) {
	if len(chosen) != len(correct) {
		return 0, fmt.Errorf("%w: %d != %d", domain.ErrLengthMismatch, len(chosen), len(correct))
	}

	matches := 0
	for i := range chosen {
		if chosen[i] == correct[i] {
			matches++
		}
	}
	return matches, nil
}
