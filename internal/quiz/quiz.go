// Package quiz builds multiple-choice vocabulary quizzes from machine
// translated words, scores answers and fetches word pronunciations.
package quiz

import (
	"context"
	"fmt"

	"vocaquiz/internal/domain"

	"go.uber.org/zap"
)

// BatchSize is the number of words in one quiz
const BatchSize = 8

// WordSource provides random English words
type WordSource interface {
	Words(ctx context.Context, n int) ([]string, error)
}

// Translator translates a batch of texts. The result must be positionally
// aligned with the input.
type Translator interface {
	Translate(ctx context.Context, texts []string, from, to domain.Language) ([]string, error)
}

// Synthesizer returns base64 encoded speech for text in the given voice locale
type Synthesizer interface {
	Synthesize(ctx context.Context, text, locale string) (string, error)
}

// Service generates quiz words and pronunciation audio
type Service struct {
	words      WordSource
	translator Translator
	speech     Synthesizer
	logger     *zap.Logger
}

// NewService creates a new quiz service
func NewService(words WordSource, translator Translator, speech Synthesizer, logger *zap.Logger) *Service {
	return &Service{
		words:      words,
		translator: translator,
		speech:     speech,
		logger:     logger,
	}
}

// GenerateQuizWords returns BatchSize questions translated into lang.
// Any failure is logged and reported as domain.ErrTranslation.
func (s *Service) GenerateQuizWords(ctx context.Context, lang domain.Language) ([]domain.QuizWord, error) {
	quizWords, err := s.generate(ctx, lang)
	if err != nil {
		s.logger.Error("Error in GenerateQuizWords",
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		return nil, domain.ErrTranslation
	}
	return quizWords, nil
}

func (s *Service) generate(ctx context.Context, lang domain.Language) ([]domain.QuizWord, error) {
	meanings, err := s.words.Words(ctx, BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get random words: %w", err)
	}

	translated, err := s.translator.Translate(ctx, meanings, domain.SourceLanguage, lang)
	if err != nil {
		return nil, fmt.Errorf("failed to translate words: %w", err)
	}

	s.logger.Debug("Words translated",
		zap.String("language", string(lang)),
		zap.Strings("meanings", meanings),
		zap.Strings("translated", translated),
	)

	// Translations are matched to meanings by position only
	if len(translated) != len(meanings) {
		return nil, fmt.Errorf("expected %d translations, got %d", len(meanings), len(translated))
	}

	quizWords := make([]domain.QuizWord, len(meanings))
	for idx := range meanings {
		options, err := BuildOptions(meanings, idx)
		if err != nil {
			return nil, err
		}
		quizWords[idx] = domain.QuizWord{
			Word:    translated[idx],
			Meaning: meanings[idx],
			Options: options,
		}
	}

	return quizWords, nil
}

// FetchAudio returns base64 encoded pronunciation of text.
// Any failure is logged and reported as domain.ErrAudioFetch.
func (s *Service) FetchAudio(ctx context.Context, text string, lang domain.Language) (string, error) {
	locale := lang.VoiceLocale()

	audio, err := s.speech.Synthesize(ctx, text, locale)
	if err != nil {
		s.logger.Error("Error in FetchAudio",
			zap.String("language", string(lang)),
			zap.String("locale", locale),
			zap.Error(err),
		)
		return "", domain.ErrAudioFetch
	}

	return audio, nil
}
