package domain

import "time"

// Day represents a day with number of finished quizzes
type Day struct {
	Date      time.Time
	QuizCount int
}

var monthNames = []string{
	"", "янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

// DateString returns date in YYYYMMDD format
func (d Day) DateString() string {
	return d.Date.Format("20060102")
}

// DisplayString returns user-friendly date string
func (d Day) DisplayString() string {
	now := time.Now()

	if sameDay(d.Date, now) {
		return "Сегодня"
	}
	if sameDay(d.Date, now.AddDate(0, 0, -1)) {
		return "Вчера"
	}

	return d.Date.Format("2 ") + monthNames[d.Date.Month()] + d.Date.Format(" 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
