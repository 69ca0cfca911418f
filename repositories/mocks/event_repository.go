package mocks

import (
	"time"

	"github.com/appleman9709/bcb-with-db/models"

	"github.com/stretchr/testify/mock"
)

// EventRepository — мок журналов событий для тестов сервисов.
type EventRepository struct {
	mock.Mock
}

func (m *EventRepository) CreateFeeding(feeding models.Feeding) (models.Feeding, error) {
	args := m.Called(feeding)
	return args.Get(0).(models.Feeding), args.Error(1)
}

func (m *EventRepository) CreateDiaper(diaper models.Diaper) (models.Diaper, error) {
	args := m.Called(diaper)
	return args.Get(0).(models.Diaper), args.Error(1)
}

func (m *EventRepository) CreateBath(bath models.Bath) (models.Bath, error) {
	args := m.Called(bath)
	return args.Get(0).(models.Bath), args.Error(1)
}

func (m *EventRepository) CreateActivity(activity models.Activity) (models.Activity, error) {
	args := m.Called(activity)
	return args.Get(0).(models.Activity), args.Error(1)
}

func (m *EventRepository) LastFeeding(familyID uint) (*models.Feeding, error) {
	args := m.Called(familyID)
	feeding, _ := args.Get(0).(*models.Feeding)
	return feeding, args.Error(1)
}

func (m *EventRepository) LastDiaper(familyID uint) (*models.Diaper, error) {
	args := m.Called(familyID)
	diaper, _ := args.Get(0).(*models.Diaper)
	return diaper, args.Error(1)
}

func (m *EventRepository) LastBath(familyID uint) (*models.Bath, error) {
	args := m.Called(familyID)
	bath, _ := args.Get(0).(*models.Bath)
	return bath, args.Error(1)
}

func (m *EventRepository) LastActivity(familyID uint) (*models.Activity, error) {
	args := m.Called(familyID)
	activity, _ := args.Get(0).(*models.Activity)
	return activity, args.Error(1)
}

func (m *EventRepository) CountBetween(kind models.EventKind, familyID uint, from, to time.Time) (int64, error) {
	args := m.Called(kind, familyID, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EventRepository) TimestampsBetween(kind models.EventKind, familyID uint, from, to time.Time) ([]time.Time, error) {
	args := m.Called(kind, familyID, from, to)
	stamps, _ := args.Get(0).([]time.Time)
	return stamps, args.Error(1)
}
