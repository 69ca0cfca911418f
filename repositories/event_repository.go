package repositories

import (
	"time"

	"github.com/appleman9709/bcb-with-db/models"
)

// EventRepository — доступ к четырем append-only журналам событий.
// Last* возвращают nil без ошибки, если событий еще не было.
type EventRepository interface {
	CreateFeeding(feeding models.Feeding) (models.Feeding, error)
	CreateDiaper(diaper models.Diaper) (models.Diaper, error)
	CreateBath(bath models.Bath) (models.Bath, error)
	CreateActivity(activity models.Activity) (models.Activity, error)

	LastFeeding(familyID uint) (*models.Feeding, error)
	LastDiaper(familyID uint) (*models.Diaper, error)
	LastBath(familyID uint) (*models.Bath, error)
	LastActivity(familyID uint) (*models.Activity, error)

	CountBetween(kind models.EventKind, familyID uint, from, to time.Time) (int64, error)
	TimestampsBetween(kind models.EventKind, familyID uint, from, to time.Time) ([]time.Time, error)
}
