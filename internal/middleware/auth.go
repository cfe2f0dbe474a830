package middleware

import (
	"vocaquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Authorizer checks bot access of users
type Authorizer interface {
	EnsureUserExists(userID int64) error
	IsAuthorized(userID int64) (bool, error)
}

var _ Authorizer = (*service.AuthService)(nil)

const (
	errorText          = "Произошла ошибка. Попробуйте позже."
	passwordPromptText = "Сначала введи пароль"
)

// AuthMiddleware lets only authorized users through
func AuthMiddleware(auth Authorizer, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if err := auth.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			authorized, err := auth.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return reply(c, errorText)
			}

			if !authorized {
				logger.Debug("Unauthorized access", zap.Int64("user_id", userID))
				return reply(c, passwordPromptText)
			}

			return next(c)
		}
	}
}

// reply answers a callback with an alert or a command with a message
func reply(c tele.Context, text string) error {
	if c.Callback() != nil {
		return c.Respond(&tele.CallbackResponse{Text: text, ShowAlert: true})
	}
	return c.Send(text)
}
