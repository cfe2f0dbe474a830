package handler

import (
	"fmt"
	"strings"

	"vocaquiz/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// languageMarkup returns the language selection keyboard
func languageMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, lang := range domain.Languages() {
		rows = append(rows, markup.Row(markup.Data(lang.Name(), prefixLanguage+string(lang))))
	}
	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

// questionText returns the text of the current question, prefixed by
// feedback on the previous answer if any
func questionText(session domain.QuizSession, feedback string) string {
	q := session.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	if feedback != "" {
		b.WriteString(feedback)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "❓ Вопрос %d/%d · %s\n\n", session.CurrentIndex()+1, len(session.Words), session.Language.Name())
	fmt.Fprintf(&b, "🔤 %s\n\n", q.Word)
	b.WriteString("Что это значит?")
	return b.String()
}

// questionMarkup returns option buttons of the current question
func questionMarkup(session domain.QuizSession) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	q := session.Current()
	if q == nil {
		return markup
	}

	idx, token := session.CurrentIndex(), session.Token()
	rows := []tele.Row{}
	for i, option := range q.Options {
		rows = append(rows, markup.Row(markup.Data(option, fmt.Sprintf("%s%s_%d_%d", prefixAnswer, token, idx, i))))
	}
	rows = append(rows,
		markup.Row(markup.Data("🔊 Произношение", fmt.Sprintf("%s%s_%d", prefixSay, token, idx))),
		markup.Row(btnCancel),
	)
	markup.Inline(rows...)
	return markup
}

// answerFeedback describes whether an answer was right
func answerFeedback(word domain.QuizWord, chosen string) string {
	if chosen == word.Meaning {
		return fmt.Sprintf("✅ Верно! %s — %s", word.Word, word.Meaning)
	}
	return fmt.Sprintf("❌ Неверно. %s — %s", word.Word, word.Meaning)
}

// resultText summarizes a finished quiz
func resultText(result *domain.QuizResult, session domain.QuizSession) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏁 Викторина завершена!\n\nПравильных ответов: %d из %d\n\n", result.Correct, result.Total)

	for i, w := range session.Words {
		mark := "❌"
		if i < len(session.Answers) && session.Answers[i] == w.Meaning {
			mark = "✅"
		}
		fmt.Fprintf(&b, "%s %s — %s\n", mark, w.Word, w.Meaning)
	}
	return b.String()
}

// resultMarkup is shown under a finished quiz
func resultMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnNewQuiz),
		markup.Row(btnMainMenu),
	)
	return markup
}

// daysMarkup lists days with quiz counts plus pagination
func daysMarkup(days []domain.Day, page, totalPages int) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}

	for _, day := range days {
		btnText := fmt.Sprintf("%s (%d)", day.DisplayString(), day.QuizCount)
		rows = append(rows, markup.Row(markup.Data(btnText, prefixDay+day.DateString())))
	}

	if totalPages > 1 {
		navRow := tele.Row{}
		if page > 1 {
			navRow = append(navRow, markup.Data("⬅️", fmt.Sprintf("%s%d", prefixPage, page-1)))
		}
		if page < totalPages {
			navRow = append(navRow, markup.Data("➡️", fmt.Sprintf("%s%d", prefixPage, page+1)))
		}
		if len(navRow) > 0 {
			rows = append(rows, navRow)
		}
	}

	rows = append(rows, markup.Row(btnBack))
	markup.Inline(rows...)
	return markup
}

// dayResultsText lists results of one day
func dayResultsText(results []domain.QuizResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Викторины за выбранный день (%d):\n\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s %s — %d/%d\n", i+1, r.CreatedAt.Format("15:04"), r.Language.Name(), r.Correct, r.Total)
	}
	return b.String()
}
