package models

import "time"

// SleepSession — единственная изменяемая запись: у семьи не может быть
// больше одной активной сессии сна одновременно.
type SleepSession struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	FamilyID   uint       `json:"family_id"`
	AuthorID   int64      `json:"author_id"`
	AuthorName string     `json:"author_name"`
	AuthorRole string     `json:"author_role"`
	StartTime  time.Time  `json:"start_time"`
	EndTime    *time.Time `json:"end_time"`
	IsActive   bool       `json:"is_active"`
}
