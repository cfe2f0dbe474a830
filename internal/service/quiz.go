package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/provider/voicerss"
	"vocaquiz/internal/quiz"
	"vocaquiz/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoSession means the user has no quiz in progress
	ErrNoSession = errors.New("no quiz in progress")
	// ErrStaleAnswer means the pressed button belongs to an answered question
	// or to an older quiz
	ErrStaleAnswer = errors.New("question is no longer active")
)

// QuizGenerator produces quiz words and pronunciations
type QuizGenerator interface {
	GenerateQuizWords(ctx context.Context, lang domain.Language) ([]domain.QuizWord, error)
	FetchAudio(ctx context.Context, text string, lang domain.Language) (string, error)
}

// AnswerOutcome describes an accepted answer
type AnswerOutcome struct {
	Question domain.QuizWord
	Chosen   string
	Correct  bool
	Done     bool
}

// QuizService runs quiz sessions of bot users
type QuizService struct {
	generator  QuizGenerator
	resultRepo repository.ResultRepository
	logger     *zap.Logger

	sessions map[int64]*domain.QuizSession
	mu       sync.RWMutex
}

// NewQuizService creates a new quiz service
func NewQuizService(generator QuizGenerator, resultRepo repository.ResultRepository, logger *zap.Logger) *QuizService {
	return &QuizService{
		generator:  generator,
		resultRepo: resultRepo,
		logger:     logger,
		sessions:   make(map[int64]*domain.QuizSession),
	}
}

// Start generates a new quiz and replaces any session in progress
func (s *QuizService) Start(ctx context.Context, userID int64, lang domain.Language) (domain.QuizSession, error) {
	words, err := s.generator.GenerateQuizWords(ctx, lang)
	if err != nil {
		return domain.QuizSession{}, err
	}

	session := &domain.QuizSession{
		ID:       uuid.New(),
		Language: lang,
		Words:    words,
		Answers:  make([]string, 0, len(words)),
	}

	s.mu.Lock()
	s.sessions[userID] = session
	s.mu.Unlock()

	s.logger.Info("Quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.String("language", string(lang)),
	)

	return *session, nil
}

// Current returns a snapshot of the user's session
func (s *QuizService) Current(userID int64) (domain.QuizSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return domain.QuizSession{}, ErrNoSession
	}
	return snapshot(session), nil
}

// Answer records option number optionIdx for question questionIdx of the
// session tagged token. Answers to an older session or to any question but
// the current one are rejected.
func (s *QuizService) Answer(userID int64, token string, questionIdx, optionIdx int) (AnswerOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return AnswerOutcome{}, ErrNoSession
	}
	if token != session.Token() || session.Done() || questionIdx != session.CurrentIndex() {
		return AnswerOutcome{}, ErrStaleAnswer
	}

	question := session.Words[questionIdx]
	if optionIdx < 0 || optionIdx >= len(question.Options) {
		return AnswerOutcome{}, fmt.Errorf("option %d out of range", optionIdx)
	}

	chosen := question.Options[optionIdx]
	session.Answers = append(session.Answers, chosen)

	return AnswerOutcome{
		Question: question,
		Chosen:   chosen,
		Correct:  chosen == question.Meaning,
		Done:     session.Done(),
	}, nil
}

// Finish scores a completed session, stores the result and closes the session
func (s *QuizService) Finish(userID int64) (*domain.QuizResult, domain.QuizSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.QuizSession{}, ErrNoSession
	}
	if !session.Done() {
		answered, total := len(session.Answers), len(session.Words)
		s.mu.Unlock()
		return nil, domain.QuizSession{}, fmt.Errorf("quiz not finished: %d of %d answered", answered, total)
	}
	delete(s.sessions, userID)
	s.mu.Unlock()

	correct, err := quiz.CountMatches(session.Answers, session.Meanings())
	if err != nil {
		return nil, domain.QuizSession{}, err
	}

	result := &domain.QuizResult{
		ID:       session.ID,
		UserID:   userID,
		Language: session.Language,
		Correct:  correct,
		Total:    len(session.Words),
	}

	if err := s.resultRepo.SaveResult(result); err != nil {
		// The score is still shown to the user
		s.logger.Error("Failed to save quiz result",
			zap.Int64("user_id", userID),
			zap.String("session_id", session.ID.String()),
			zap.Error(err),
		)
	}

	s.logger.Info("Quiz finished",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.Int("correct", correct),
		zap.Int("total", result.Total),
	)

	return result, *session, nil
}

// Pronounce returns mp3 audio of the translated word of question questionIdx
// in the session tagged token
func (s *QuizService) Pronounce(ctx context.Context, userID int64, token string, questionIdx int) ([]byte, error) {
	session, err := s.Current(userID)
	if err != nil {
		return nil, err
	}
	if token != session.Token() {
		return nil, ErrStaleAnswer
	}
	if questionIdx < 0 || questionIdx >= len(session.Words) {
		return nil, fmt.Errorf("question %d out of range", questionIdx)
	}

	payload, err := s.generator.FetchAudio(ctx, session.Words[questionIdx].Word, session.Language)
	if err != nil {
		return nil, err
	}

	audio, err := voicerss.DecodeAudio(payload)
	if err != nil {
		s.logger.Error("Failed to decode audio", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.ErrAudioFetch
	}
	return audio, nil
}

// Abort drops the user's session
func (s *QuizService) Abort(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

func snapshot(session *domain.QuizSession) domain.QuizSession {
	cp := *session
	cp.Answers = append([]string(nil), session.Answers...)
	return cp
}
