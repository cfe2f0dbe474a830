package repository

import (
	"time"

	"vocaquiz/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
}

// ResultRepository defines quiz result data operations
type ResultRepository interface {
	SaveResult(result *domain.QuizResult) error
	GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error)
	CleanOldResults(days int) error
}
