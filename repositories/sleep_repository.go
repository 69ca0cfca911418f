package repositories

import (
	"time"

	"github.com/appleman9709/bcb-with-db/models"
)

type SleepRepository interface {
	ActiveSession(familyID uint) (*models.SleepSession, error)
	// StartSession закрывает активную сессию семьи и создает новую одной
	// транзакцией, чтобы инвариант "не больше одной активной" не нарушался
	// при конкурентных запросах.
	StartSession(session models.SleepSession) (models.SleepSession, error)
	// EndSession условно закрывает активную сессию. Если активной нет,
	// возвращает (nil, nil) — ноль затронутых строк не считается ошибкой.
	EndSession(familyID uint, endTime time.Time) (*models.SleepSession, error)
}
