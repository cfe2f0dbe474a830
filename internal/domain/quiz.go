package domain

import (
	"time"

	"github.com/google/uuid"
)

// QuizWord is a single multiple-choice question
type QuizWord struct {
	Word    string   // translated word shown to the user
	Meaning string   // original English word, the correct answer
	Options []string // four candidates, Meaning among them
}

// QuizSession holds an in-progress quiz of a user
type QuizSession struct {
	ID       uuid.UUID
	Language Language
	Words    []QuizWord
	Answers  []string
}

// Token returns a short session tag carried in button data, so presses on
// messages of an older quiz can be told apart
func (s *QuizSession) Token() string {
	return s.ID.String()[:8]
}

// CurrentIndex returns index of the question awaiting an answer
func (s *QuizSession) CurrentIndex() int {
	return len(s.Answers)
}

// Done reports whether every question has been answered
func (s *QuizSession) Done() bool {
	return len(s.Answers) >= len(s.Words)
}

// Current returns the question awaiting an answer, nil when done
func (s *QuizSession) Current() *QuizWord {
	if s.Done() {
		return nil
	}
	return &s.Words[s.CurrentIndex()]
}

// Meanings returns the correct answers in question order
func (s *QuizSession) Meanings() []string {
	meanings := make([]string, len(s.Words))
	for i, w := range s.Words {
		meanings[i] = w.Meaning
	}
	return meanings
}

// QuizResult is a finished quiz stored in the database
type QuizResult struct {
	ID        uuid.UUID
	UserID    int64
	Language  Language
	Correct   int
	Total     int
	CreatedAt time.Time
}
