package handler

import (
	"strings"

	"vocaquiz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles password entry; quizzes are driven by buttons
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore unknown commands
	if strings.HasPrefix(text, "/") {
		return nil
	}

	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send(errorText)
	}

	if authorized {
		if h.GetState(userID).State == domain.StateInQuiz {
			return c.Send("Отвечай кнопками под вопросом 👆")
		}
		return c.Send("Используй кнопки меню 👇", mainMenuMarkup())
	}

	ok, err := h.authService.Login(userID, text)
	if err != nil {
		h.logger.Error("Failed to authorize user", zap.Error(err))
		return c.Send(errorText)
	}
	if !ok {
		return c.Send("Неверный пароль")
	}

	h.logger.Info("User authorized", zap.Int64("user_id", userID))
	h.ResetState(userID)
	return c.Send("✅ Доступ разрешён!\n\n"+mainMenuText, mainMenuMarkup())
}
