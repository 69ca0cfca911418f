package models

import "time"

// EventKind различает четыре независимых журнала событий.
type EventKind string

const (
	EventFeeding  EventKind = "feeding"
	EventDiaper   EventKind = "diaper"
	EventBath     EventKind = "bath"
	EventActivity EventKind = "activity"
)

type Feeding struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	FamilyID   uint      `json:"family_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Timestamp  time.Time `json:"timestamp"`
}

type Diaper struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	FamilyID   uint      `json:"family_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Timestamp  time.Time `json:"timestamp"`
}

type Bath struct {
	ID         uint      `json:"id" gorm:"primary_key"`
	FamilyID   uint      `json:"family_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	AuthorRole string    `json:"author_role"`
	Timestamp  time.Time `json:"timestamp"`
}

type Activity struct {
	ID           uint      `json:"id" gorm:"primary_key"`
	FamilyID     uint      `json:"family_id"`
	AuthorID     int64     `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorRole   string    `json:"author_role"`
	ActivityType string    `json:"activity_type"`
	Timestamp    time.Time `json:"timestamp"`
}
