package testutil

import (
	"time"

	"vocaquiz/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:     userID,
		Authorized: authorized,
		CreatedAt:  time.Now(),
	}
}

// NewTestResult creates a test quiz result
func NewTestResult(userID int64, lang domain.Language, correct, total int) domain.QuizResult {
	return domain.QuizResult{
		ID:        uuid.New(),
		UserID:    userID,
		Language:  lang,
		Correct:   correct,
		Total:     total,
		CreatedAt: time.Now(),
	}
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, quizCount int) domain.Day {
	return domain.Day{
		Date:      date,
		QuizCount: quizCount,
	}
}

// TestMeanings is a batch of eight distinct English words
var TestMeanings = []string{"apple", "house", "river", "green", "table", "music", "window", "bread"}

// TestTranslations is TestMeanings translated into Spanish
var TestTranslations = []string{"manzana", "casa", "río", "verde", "mesa", "música", "ventana", "pan"}

// NewTestQuizWords creates quiz words whose first option is always correct
func NewTestQuizWords() []domain.QuizWord {
	words := make([]domain.QuizWord, len(TestMeanings))
	for i, meaning := range TestMeanings {
		words[i] = domain.QuizWord{
			Word:    TestTranslations[i],
			Meaning: meaning,
			Options: []string{
				meaning,
				TestMeanings[(i+1)%len(TestMeanings)],
				TestMeanings[(i+2)%len(TestMeanings)],
				TestMeanings[(i+3)%len(TestMeanings)],
			},
		}
	}
	return words
}
