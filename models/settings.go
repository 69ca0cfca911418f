package models

// Settings — необязательная строка настроек семьи. Отсутствие строки
// означает значения по умолчанию (подставляются на уровне сервиса).
type Settings struct {
	ID                      uint    `json:"id" gorm:"primary_key"`
	FamilyID                uint    `json:"family_id" gorm:"uniqueIndex"`
	FeedInterval            int     `json:"feed_interval"`
	DiaperInterval          int     `json:"diaper_interval"`
	BabyAgeMonths           int     `json:"baby_age_months"`
	BabyBirthDate           *string `json:"baby_birth_date"`
	TipsEnabled             bool    `json:"tips_enabled"`
	BathReminderEnabled     bool    `json:"bath_reminder_enabled"`
	ActivityReminderEnabled bool    `json:"activity_reminder_enabled"`
}
