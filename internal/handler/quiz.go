package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vocaquiz/internal/domain"
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const requestTimeout = 30 * time.Second

// handleNewQuiz shows language selection
func (h *Handler) handleNewQuiz(c tele.Context) error {
	userID := c.Sender().ID

	h.quizService.Abort(userID)
	h.SetState(userID, &domain.StateData{State: domain.StateChoosingLanguage})

	return h.editOrSend(c, "🌍 На какой язык переводить слова?", languageMarkup())
}

// handleLanguage generates a quiz in the chosen language
func (h *Handler) handleLanguage(c tele.Context, data string) error {
	userID := c.Sender().ID

	lang, err := domain.ParseLanguage(strings.TrimPrefix(data, prefixLanguage))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный язык"})
	}

	unlock := h.lockUser(userID)
	defer unlock()

	// Language keyboards of earlier messages must not replace a running quiz
	if h.GetState(userID).State != domain.StateChoosingLanguage {
		return c.Respond(&tele.CallbackResponse{Text: "Сначала нажми «Новая викторина»"})
	}

	if err := c.Notify(tele.Typing); err != nil {
		h.logger.Debug("Failed to send chat action", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	session, err := h.quizService.Start(ctx, userID, lang)
	if err != nil {
		h.logger.Error("Failed to start quiz",
			zap.Int64("user_id", userID),
			zap.String("language", string(lang)),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{
			Text:      "Не удалось подготовить слова, попробуй ещё раз",
			ShowAlert: true,
		})
	}

	h.SetState(userID, &domain.StateData{State: domain.StateInQuiz})

	return h.editOrSend(c, questionText(session, ""), questionMarkup(session))
}

// handleAnswer records an answer and shows the next question or the score
func (h *Handler) handleAnswer(c tele.Context, data string) error {
	userID := c.Sender().ID

	token, nums, err := parseQuizCallback(data, prefixAnswer, 2)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный ответ"})
	}

	unlock := h.lockUser(userID)
	defer unlock()

	outcome, err := h.quizService.Answer(userID, token, nums[0], nums[1])
	switch {
	case errors.Is(err, service.ErrStaleAnswer):
		return c.Respond(&tele.CallbackResponse{Text: "Этот вопрос уже неактивен"})
	case errors.Is(err, service.ErrNoSession):
		return c.Respond(&tele.CallbackResponse{Text: "Викторина не найдена, начни новую", ShowAlert: true})
	case err != nil:
		h.logger.Warn("Failed to record answer", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Неверный ответ"})
	}

	feedback := answerFeedback(outcome.Question, outcome.Chosen)
	resp := &tele.CallbackResponse{Text: "✅"}
	if !outcome.Correct {
		resp.Text = "❌"
	}

	if !outcome.Done {
		session, err := h.quizService.Current(userID)
		if err != nil {
			h.logger.Error("Session vanished after answer", zap.Int64("user_id", userID), zap.Error(err))
			return c.Respond()
		}
		return h.editOrSend(c, questionText(session, feedback), questionMarkup(session), resp)
	}

	result, session, err := h.quizService.Finish(userID)
	if err != nil {
		h.logger.Error("Failed to finish quiz", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: errorText})
	}

	h.ResetState(userID)
	return h.editOrSend(c, feedback+"\n\n"+resultText(result, session), resultMarkup(), resp)
}

// handleSay sends pronunciation of a quiz word
func (h *Handler) handleSay(c tele.Context, data string) error {
	userID := c.Sender().ID

	token, nums, err := parseQuizCallback(data, prefixSay, 1)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный запрос"})
	}

	session, err := h.quizService.Current(userID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Викторина не найдена, начни новую", ShowAlert: true})
	}
	if nums[0] < 0 || nums[0] >= len(session.Words) {
		return c.Respond(&tele.CallbackResponse{Text: "Неверный запрос"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	audio, err := h.quizService.Pronounce(ctx, userID, token, nums[0])
	if errors.Is(err, service.ErrStaleAnswer) {
		return c.Respond(&tele.CallbackResponse{Text: "Этот вопрос уже неактивен"})
	}
	if err != nil {
		h.logger.Error("Failed to fetch pronunciation",
			zap.Int64("user_id", userID),
			zap.Int("question", nums[0]),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Не удалось загрузить аудио"})
	}

	word := session.Words[nums[0]].Word
	if err := c.Send(&tele.Audio{
		File:     tele.FromReader(bytes.NewReader(audio)),
		Title:    word,
		MIME:     "audio/mpeg",
		FileName: fmt.Sprintf("%s.mp3", session.Language),
	}); err != nil {
		h.logger.Error("Failed to send audio", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Не удалось отправить аудио"})
	}

	return c.Respond()
}

// handleCancel aborts the quiz and returns to the main menu
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.quizService.Abort(userID)
	h.ResetState(userID)

	return h.editOrSend(c, mainMenuText, mainMenuMarkup())
}
