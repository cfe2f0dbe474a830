package handler

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const noResultsText = "У тебя пока нет пройденных викторин"

// handleViewDays shows the first page of days with quiz results
func (h *Handler) handleViewDays(c tele.Context) error {
	return h.showDaysPage(c, 1)
}

// handlePagination handles page navigation
func (h *Handler) handlePagination(c tele.Context, data string) error {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefixPage))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неверная страница"})
	}
	return h.showDaysPage(c, page)
}

func (h *Handler) showDaysPage(c tele.Context, page int) error {
	userID := c.Sender().ID

	days, totalPages, err := h.statsService.GetDaysList(userID, page)
	if err != nil {
		h.logger.Error("Failed to get days list", zap.Int64("user_id", userID), zap.Error(err))
		if c.Callback() == nil {
			return c.Send(errorText)
		}
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке данных"})
	}

	if len(days) == 0 {
		if c.Callback() == nil {
			return c.Send(noResultsText, mainMenuMarkup())
		}
		return c.Respond(&tele.CallbackResponse{Text: noResultsText, ShowAlert: true})
	}

	return h.editOrSend(c, "📅 Дни с викторинами:", daysMarkup(days, page, totalPages))
}

// handleDaySelection shows quiz results of the selected day
func (h *Handler) handleDaySelection(c tele.Context, data string) error {
	userID := c.Sender().ID
	dateStr := strings.TrimPrefix(data, prefixDay)

	results, err := h.statsService.GetResultsByDate(userID, dateStr)
	if err != nil {
		h.logger.Error("Failed to get results by date",
			zap.Int64("user_id", userID),
			zap.String("date", dateStr),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if len(results) == 0 {
		return c.Respond(&tele.CallbackResponse{Text: "Нет викторин за этот день"})
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnBackToDays, btnMainMenu))

	return h.editOrSend(c, dayResultsText(results), markup)
}
