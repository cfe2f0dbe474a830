package service

import (
	"context"
	"fmt"
	"testing"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func startTestQuiz(t *testing.T, results *testutil.MockResultRepository) (*QuizService, *testutil.MockQuizGenerator) {
	t.Helper()

	generator := new(testutil.MockQuizGenerator)
	generator.On("GenerateQuizWords", mock.Anything, domain.LangSpanish).Return(testutil.NewTestQuizWords(), nil)

	service := NewQuizService(generator, results, testutil.NewTestLogger())

	session, err := service.Start(context.Background(), 123, domain.LangSpanish)
	require.NoError(t, err)
	require.Len(t, session.Words, 8)

	return service, generator
}

func currentToken(t *testing.T, service *QuizService, userID int64) string {
	t.Helper()

	session, err := service.Current(userID)
	require.NoError(t, err)
	return session.Token()
}

func TestQuizService_Start(t *testing.T) {
	service, generator := startTestQuiz(t, nil)

	session, err := service.Current(123)
	require.NoError(t, err)
	assert.Equal(t, domain.LangSpanish, session.Language)
	assert.Empty(t, session.Answers)
	assert.Equal(t, "manzana", session.Current().Word)

	_, err = service.Current(456)
	assert.ErrorIs(t, err, ErrNoSession)

	generator.AssertExpectations(t)
}

func TestQuizService_Start_Error(t *testing.T) {
	generator := new(testutil.MockQuizGenerator)
	generator.On("GenerateQuizWords", mock.Anything, domain.LangHindi).Return(nil, domain.ErrTranslation)

	service := NewQuizService(generator, nil, testutil.NewTestLogger())

	_, err := service.Start(context.Background(), 123, domain.LangHindi)
	assert.ErrorIs(t, err, domain.ErrTranslation)

	_, err = service.Current(123)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestQuizService_Answer(t *testing.T) {
	service, _ := startTestQuiz(t, nil)
	token := currentToken(t, service, 123)

	// Option 0 is the correct one in test quiz words
	outcome, err := service.Answer(123, token, 0, 0)
	require.NoError(t, err)
	assert.True(t, outcome.Correct)
	assert.Equal(t, "apple", outcome.Chosen)
	assert.False(t, outcome.Done)

	outcome, err = service.Answer(123, token, 1, 2)
	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, "house", outcome.Question.Meaning)

	// Repeated press on an old question
	_, err = service.Answer(123, token, 1, 0)
	assert.ErrorIs(t, err, ErrStaleAnswer)

	_, err = service.Answer(123, token, 2, 4)
	assert.Error(t, err)

	_, err = service.Answer(456, token, 0, 0)
	assert.ErrorIs(t, err, ErrNoSession)

	session, err := service.Current(123)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "green"}, session.Answers)
}

func TestQuizService_Answer_OlderQuizRejected(t *testing.T) {
	service, generator := startTestQuiz(t, nil)
	oldToken := currentToken(t, service, 123)

	frenchWords := testutil.NewTestQuizWords()
	for i := range frenchWords {
		frenchWords[i].Word = "fr-" + frenchWords[i].Word
	}
	generator.On("GenerateQuizWords", mock.Anything, domain.LangFrench).Return(frenchWords, nil)

	_, err := service.Start(context.Background(), 123, domain.LangFrench)
	require.NoError(t, err)
	newToken := currentToken(t, service, 123)
	require.NotEqual(t, oldToken, newToken)

	// A press on the first quiz's message must not land in the second quiz
	_, err = service.Answer(123, oldToken, 0, 1)
	assert.ErrorIs(t, err, ErrStaleAnswer)

	session, err := service.Current(123)
	require.NoError(t, err)
	assert.Empty(t, session.Answers)
	assert.Equal(t, domain.LangFrench, session.Language)

	outcome, err := service.Answer(123, newToken, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "fr-manzana", outcome.Question.Word)
	assert.True(t, outcome.Correct)
}

func TestQuizService_Finish(t *testing.T) {
	results := new(testutil.MockResultRepository)
	results.On("SaveResult", mock.MatchedBy(func(r *domain.QuizResult) bool {
		return r.UserID == 123 && r.Language == domain.LangSpanish && r.Correct == 5 && r.Total == 8
	})).Return(nil)

	service, _ := startTestQuiz(t, results)

	_, _, err := service.Finish(123)
	assert.Error(t, err, "unfinished quiz must not be scored")

	token := currentToken(t, service, 123)
	for i := 0; i < 8; i++ {
		option := 0
		if i >= 5 {
			option = 1
		}
		outcome, err := service.Answer(123, token, i, option)
		require.NoError(t, err)
		assert.Equal(t, i == 7, outcome.Done)
	}

	result, session, err := service.Finish(123)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Correct)
	assert.Equal(t, 8, result.Total)
	assert.Equal(t, session.ID, result.ID)
	assert.Len(t, session.Answers, 8)

	_, err = service.Current(123)
	assert.ErrorIs(t, err, ErrNoSession)

	_, _, err = service.Finish(123)
	assert.ErrorIs(t, err, ErrNoSession)

	results.AssertExpectations(t)
}

func TestQuizService_Finish_SaveErrorStillScores(t *testing.T) {
	results := new(testutil.MockResultRepository)
	results.On("SaveResult", mock.Anything).Return(fmt.Errorf("db down"))

	service, _ := startTestQuiz(t, results)
	token := currentToken(t, service, 123)
	for i := 0; i < 8; i++ {
		_, err := service.Answer(123, token, i, 0)
		require.NoError(t, err)
	}

	result, _, err := service.Finish(123)
	require.NoError(t, err)
	assert.Equal(t, 8, result.Correct)
}

func TestQuizService_Pronounce(t *testing.T) {
	service, generator := startTestQuiz(t, nil)
	generator.On("FetchAudio", mock.Anything, "casa", domain.LangSpanish).Return("data:audio/mpeg;base64,SUQz", nil)
	generator.On("FetchAudio", mock.Anything, "río", domain.LangSpanish).Return("", domain.ErrAudioFetch)
	generator.On("FetchAudio", mock.Anything, "verde", domain.LangSpanish).Return("%%%", nil)

	token := currentToken(t, service, 123)

	audio, err := service.Pronounce(context.Background(), 123, token, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3"), audio)

	_, err = service.Pronounce(context.Background(), 123, token, 2)
	assert.ErrorIs(t, err, domain.ErrAudioFetch)

	_, err = service.Pronounce(context.Background(), 123, token, 3)
	assert.ErrorIs(t, err, domain.ErrAudioFetch)

	_, err = service.Pronounce(context.Background(), 123, token, 8)
	assert.Error(t, err)

	_, err = service.Pronounce(context.Background(), 456, token, 0)
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = service.Pronounce(context.Background(), 123, "00000000", 1)
	assert.ErrorIs(t, err, ErrStaleAnswer)

	generator.AssertExpectations(t)
}

func TestQuizService_Abort(t *testing.T) {
	service, _ := startTestQuiz(t, nil)

	service.Abort(123)

	_, err := service.Current(123)
	assert.ErrorIs(t, err, ErrNoSession)
}
