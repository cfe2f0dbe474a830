package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(words *testutil.MockWordSource, tr *testutil.MockTranslator, speech *testutil.MockSynthesizer) *Service {
	return NewService(words, tr, speech, testutil.NewTestLogger())
}

func TestService_GenerateQuizWords(t *testing.T) {
	for _, lang := range domain.Languages() {
		t.Run(string(lang), func(t *testing.T) {
			words := new(testutil.MockWordSource)
			tr := new(testutil.MockTranslator)

			words.On("Words", mock.Anything, BatchSize).Return(testutil.TestMeanings, nil)
			tr.On("Translate", mock.Anything, testutil.TestMeanings, domain.LangEnglish, lang).
				Return(testutil.TestTranslations, nil)

			service := newTestService(words, tr, nil)

			quizWords, err := service.GenerateQuizWords(context.Background(), lang)
			require.NoError(t, err)
			require.Len(t, quizWords, BatchSize)

			for i, qw := range quizWords {
				assert.Equal(t, testutil.TestTranslations[i], qw.Word)
				assert.Equal(t, testutil.TestMeanings[i], qw.Meaning)
				assert.Len(t, qw.Options, DecoyCount+1)
				assert.Contains(t, qw.Options, qw.Meaning)
				for _, option := range qw.Options {
					assert.Contains(t, testutil.TestMeanings, option)
				}
			}

			words.AssertExpectations(t)
			tr.AssertExpectations(t)
		})
	}
}

func TestService_GenerateQuizWords_Errors(t *testing.T) {
	tests := []struct {
		name        string
		wordsErr    error
		translated  []string
		translErr   error
		translCalls bool
	}{
		{
			name:     "word source error",
			wordsErr: fmt.Errorf("source empty"),
		},
		{
			name:        "translation request error",
			translErr:   fmt.Errorf("status 500"),
			translCalls: true,
		},
		{
			name:        "short translation response",
			translated:  testutil.TestTranslations[:5],
			translCalls: true,
		},
		{
			name:        "empty translation response",
			translated:  []string{},
			translCalls: true,
		},
		{
			name:        "long translation response",
			translated:  append(append([]string{}, testutil.TestTranslations...), "extra"),
			translCalls: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := new(testutil.MockWordSource)
			tr := new(testutil.MockTranslator)

			if tt.wordsErr != nil {
				words.On("Words", mock.Anything, BatchSize).Return(nil, tt.wordsErr)
			} else {
				words.On("Words", mock.Anything, BatchSize).Return(testutil.TestMeanings, nil)
			}
			if tt.translCalls {
				if tt.translErr != nil {
					tr.On("Translate", mock.Anything, testutil.TestMeanings, domain.LangEnglish, domain.LangFrench).
						Return(nil, tt.translErr)
				} else {
					tr.On("Translate", mock.Anything, testutil.TestMeanings, domain.LangEnglish, domain.LangFrench).
						Return(tt.translated, nil)
				}
			}

			service := newTestService(words, tr, nil)

			quizWords, err := service.GenerateQuizWords(context.Background(), domain.LangFrench)
			assert.ErrorIs(t, err, domain.ErrTranslation)
			assert.Nil(t, quizWords)

			words.AssertExpectations(t)
			tr.AssertExpectations(t)
		})
	}
}

func TestService_GenerateQuizWords_NotEnoughDecoys(t *testing.T) {
	words := new(testutil.MockWordSource)
	tr := new(testutil.MockTranslator)

	meanings := []string{"cat", "cat", "cat", "dog", "dog", "dog", "sun", "sun"}
	words.On("Words", mock.Anything, BatchSize).Return(meanings, nil)
	tr.On("Translate", mock.Anything, meanings, domain.LangEnglish, domain.LangHindi).
		Return(testutil.TestTranslations, nil)

	service := newTestService(words, tr, nil)

	_, err := service.GenerateQuizWords(context.Background(), domain.LangHindi)
	assert.ErrorIs(t, err, domain.ErrTranslation)
}

func TestService_FetchAudio(t *testing.T) {
	tests := []struct {
		name   string
		lang   domain.Language
		locale string
	}{
		{name: "japanese", lang: domain.LangJapanese, locale: "ja-jp"},
		{name: "spanish", lang: domain.LangSpanish, locale: "es-es"},
		{name: "french", lang: domain.LangFrench, locale: "fr-fr"},
		{name: "hindi", lang: domain.LangHindi, locale: "hi-in"},
		{name: "english", lang: domain.LangEnglish, locale: "hi-in"},
		{name: "unknown code", lang: domain.Language("xx"), locale: "hi-in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speech := new(testutil.MockSynthesizer)
			speech.On("Synthesize", mock.Anything, "hola", tt.locale).Return("SUQzBAAAAA==", nil)

			service := newTestService(nil, nil, speech)

			audio, err := service.FetchAudio(context.Background(), "hola", tt.lang)
			require.NoError(t, err)
			assert.Equal(t, "SUQzBAAAAA==", audio)

			speech.AssertExpectations(t)
		})
	}
}

func TestService_FetchAudio_Error(t *testing.T) {
	speech := new(testutil.MockSynthesizer)
	speech.On("Synthesize", mock.Anything, "hola", "es-es").Return("", errors.New("connection refused"))

	service := newTestService(nil, nil, speech)

	audio, err := service.FetchAudio(context.Background(), "hola", domain.LangSpanish)
	assert.ErrorIs(t, err, domain.ErrAudioFetch)
	assert.NotContains(t, err.Error(), "connection refused")
	assert.Empty(t, audio)
}
