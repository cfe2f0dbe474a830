package postgres

import (
	"database/sql"
	"fmt"
	"time"
	_ "time/tzdata"

	"vocaquiz/internal/domain"
)

// Day boundaries are computed in Moscow time (day changes at 00:00 MSK)
const dayTimezone = "Europe/Moscow"

// ResultRepo implements repository.ResultRepository
type ResultRepo struct {
	db *sql.DB
}

// NewResultRepo creates a new quiz result repository
func NewResultRepo(db *sql.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// SaveResult stores a finished quiz
func (r *ResultRepo) SaveResult(result *domain.QuizResult) error {
	query := `
		INSERT INTO quiz_results (id, user_id, language, correct, total)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query, result.ID, result.UserID, string(result.Language), result.Correct, result.Total)
	if err != nil {
		return fmt.Errorf("failed to save quiz result: %w", err)
	}
	return nil
}

// GetDaysWithResults returns days of the last 60 that have finished quizzes
func (r *ResultRepo) GetDaysWithResults(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE 'Europe/Moscow') AS day, COUNT(*) AS count
		FROM quiz_results
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '60 days'
		GROUP BY day
		ORDER BY day DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.QuizCount); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns number of days with results in the last 60
func (r *ResultRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE 'Europe/Moscow'))
		FROM quiz_results
		WHERE user_id = $1
			AND created_at >= NOW() - INTERVAL '60 days'
	`

	var count int
	if err := r.db.QueryRow(query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count days: %w", err)
	}
	return count, nil
}

// GetResultsByDate returns results finished on the given Moscow calendar day
func (r *ResultRepo) GetResultsByDate(userID int64, date time.Time) ([]domain.QuizResult, error) {
	loc, err := time.LoadLocation(dayTimezone)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	query := `
		SELECT id, user_id, language, correct, total, created_at
		FROM quiz_results
		WHERE user_id = $1
			AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []domain.QuizResult
	for rows.Next() {
		var res domain.QuizResult
		var lang string
		if err := rows.Scan(&res.ID, &res.UserID, &lang, &res.Correct, &res.Total, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		res.Language = domain.Language(lang)
		results = append(results, res)
	}

	return results, rows.Err()
}

// CleanOldResults deletes results older than specified days
func (r *ResultRepo) CleanOldResults(days int) error {
	query := `
		DELETE FROM quiz_results
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	if _, err := r.db.Exec(query, days); err != nil {
		return fmt.Errorf("failed to clean old results: %w", err)
	}
	return nil
}
