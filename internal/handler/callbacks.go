package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Prefixes of dynamic callback data
const (
	prefixLanguage = "lang_"
	prefixAnswer   = "ans_"
	prefixSay      = "say_"
	prefixPage     = "page_"
	prefixDay      = "day_"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// parseQuizCallback parses "<prefix><token>_<a>_<b>..." into the session
// token and n integers
func parseQuizCallback(data, prefix string, n int) (string, []int, error) {
	parts := strings.Split(strings.TrimPrefix(data, prefix), "_")
	if len(parts) != n+1 || parts[0] == "" {
		return "", nil, fmt.Errorf("expected token and %d numbers in %q", n, data)
	}

	nums := make([]int, n)
	for i, part := range parts[1:] {
		num, err := strconv.Atoi(part)
		if err != nil {
			return "", nil, fmt.Errorf("invalid number in %q: %w", data, err)
		}
		nums[i] = num
	}
	return parts[0], nums, nil
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// Already edited by another callback
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// editOrSend edits the callback message or sends a new one for commands.
// resp, if given, is the callback answer shown to the user.
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup, resp ...*tele.CallbackResponse) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	if err := c.Edit(text, markup); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, markup)
	}
	return c.Respond(resp...)
}

// handleCallback handles callbacks of dynamic buttons
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("id", callback.ID),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	// Buttons whose Unique didn't come through
	switch data {
	case btnNewQuiz.Unique:
		return h.handleNewQuiz(c)
	case btnViewDays.Unique, btnBackToDays.Unique:
		return h.handleViewDays(c)
	case btnCancel.Unique:
		return h.handleCancel(c)
	case btnBack.Unique, btnMainMenu.Unique:
		return h.handleStart(c)
	}

	switch {
	case strings.HasPrefix(data, prefixLanguage):
		return h.handleLanguage(c, data)
	case strings.HasPrefix(data, prefixAnswer):
		return h.handleAnswer(c, data)
	case strings.HasPrefix(data, prefixSay):
		return h.handleSay(c, data)
	case strings.HasPrefix(data, prefixPage):
		return h.handlePagination(c, data)
	case strings.HasPrefix(data, prefixDay):
		return h.handleDaySelection(c, data)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
