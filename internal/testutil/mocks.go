package testutil

import (
	"context"
	"time"

	"vocaquiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockResultRepository is a mock for ResultRepository
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(result *domain.QuizResult) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepository) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockResultRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockResultRepository) GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

func (m *MockResultRepository) CleanOldResults(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockWordSource is a mock for quiz.WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) Words(ctx context.Context, n int) ([]string, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTranslator is a mock for quiz.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, texts []string, from, to domain.Language) ([]string, error) {
	args := m.Called(ctx, texts, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSynthesizer is a mock for quiz.Synthesizer
type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text, locale string) (string, error) {
	args := m.Called(ctx, text, locale)
	return args.String(0), args.Error(1)
}

// MockQuizGenerator is a mock for service.QuizGenerator
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) GenerateQuizWords(ctx context.Context, lang domain.Language) ([]domain.QuizWord, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuizWord), args.Error(1)
}

func (m *MockQuizGenerator) FetchAudio(ctx context.Context, text string, lang domain.Language) (string, error) {
	args := m.Called(ctx, text, lang)
	return args.String(0), args.Error(1)
}
