package service

import (
	"fmt"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/repository"

	"go.uber.org/zap"
)

const (
	daysPageSize  = 7
	retentionDays = 60
)

// StatsService handles quiz history and cleanup
type StatsService struct {
	resultRepo repository.ResultRepository
	logger     *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(resultRepo repository.ResultRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		resultRepo: resultRepo,
		logger:     logger,
	}
}

// GetDaysList returns paginated list of days with quiz counts and total pages
func (s *StatsService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	days, err := s.resultRepo.GetDaysWithResults(userID, daysPageSize, (page-1)*daysPageSize)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.resultRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + daysPageSize - 1) / daysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetResultsByDate returns results of a day given in YYYYMMDD format
func (s *StatsService) GetResultsByDate(userID int64, dateStr string) ([]domain.QuizResult, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.resultRepo.GetResultsByDate(userID, date)
}

// CleanupOldData removes results older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old quiz results", zap.Int("retention_days", retentionDays))

	if err := s.resultRepo.CleanOldResults(retentionDays); err != nil {
		s.logger.Error("Failed to cleanup old quiz results", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
