package services

// Status — степень свежести события относительно настроенного интервала.
// Применяется только к кормлениям и сменам подгузника: у купаний и
// активностей настроенного интервала нет.
type Status string

const (
	StatusGood    Status = "good"
	StatusDue     Status = "due"
	StatusOverdue Status = "overdue"
)

// Classify сравнивает прошедшее время с интервалом (в часах):
// good — меньше интервала, due — в пределах получаса сверх него,
// overdue — все, что дальше. Границы: elapsed == interval дает due,
// elapsed == interval+0.5 дает overdue.
func Classify(elapsed TimeAgo, intervalHours int) Status {
	hours := elapsed.HoursValue()
	interval := float64(intervalHours)
	switch {
	case hours < interval:
		return StatusGood
	case hours < interval+0.5:
		return StatusDue
	default:
		return StatusOverdue
	}
}
