package services

import "time"

// Location — фиксированный часовой пояс семьи (Бангкок, UTC+7, без
// перехода на летнее время). Все границы "дня" считаются в нем,
// сами метки времени хранятся и сравниваются в UTC.
var Location = time.FixedZone("UTC+7", 7*60*60)

func LocalNow() time.Time {
	return time.Now().In(Location)
}

// LocalDate обрезает момент времени до местной полуночи.
func LocalDate(t time.Time) time.Time {
	lt := t.In(Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location)
}

func endOfDay(midnight time.Time) time.Time {
	return midnight.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// PeriodWindow возвращает включительные границы окна дашборда.
// Неизвестный период трактуется как "today".
func PeriodWindow(period string, now time.Time) (time.Time, time.Time) {
	today := LocalDate(now)
	switch period {
	case "week":
		return today.AddDate(0, 0, -6), endOfDay(today)
	case "month":
		return today.AddDate(0, 0, -29), endOfDay(today)
	default:
		return today, endOfDay(today)
	}
}

// HistoryWindow возвращает окно в days календарных дней, включая сегодня.
func HistoryWindow(days int, now time.Time) (time.Time, time.Time) {
	today := LocalDate(now)
	return today.AddDate(0, 0, -(days - 1)), endOfDay(today)
}

// ClampDays ограничивает запрошенную глубину истории диапазоном [1, 30].
// Значения больше 30 молча обрезаются, а не отклоняются.
func ClampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > 30 {
		return 30
	}
	return days
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// ParseTimestamp принимает метку времени клиента: RFC3339 или вариант
// без зоны, который трактуется как местное время UTC+7.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		ts, err := time.ParseInLocation(layout, value, Location)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// TimeAgo — прошедшее время в целых часах и оставшихся минутах (floor).
type TimeAgo struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// ElapsedSince считает время от события до now. Событие с меткой из
// будущего дает нулевую длительность, а не отрицательную.
func ElapsedSince(event, now time.Time) TimeAgo {
	diff := now.Sub(event)
	if diff < 0 {
		diff = 0
	}
	return TimeAgo{
		Hours:   int(diff.Hours()),
		Minutes: int(diff.Minutes()) % 60,
	}
}

// HoursValue выражает прошедшее время вещественным числом часов
// для сравнения с настроенным интервалом.
func (t TimeAgo) HoursValue() float64 {
	return float64(t.Hours) + float64(t.Minutes)/60.0
}
