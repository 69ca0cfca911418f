package mocks

import (
	"time"

	"github.com/appleman9709/bcb-with-db/models"

	"github.com/stretchr/testify/mock"
)

// SleepRepository — мок сессий сна для тестов сервисов.
type SleepRepository struct {
	mock.Mock
}

func (m *SleepRepository) ActiveSession(familyID uint) (*models.SleepSession, error) {
	args := m.Called(familyID)
	session, _ := args.Get(0).(*models.SleepSession)
	return session, args.Error(1)
}

func (m *SleepRepository) StartSession(session models.SleepSession) (models.SleepSession, error) {
	args := m.Called(session)
	return args.Get(0).(models.SleepSession), args.Error(1)
}

func (m *SleepRepository) EndSession(familyID uint, endTime time.Time) (*models.SleepSession, error) {
	args := m.Called(familyID, endTime)
	session, _ := args.Get(0).(*models.SleepSession)
	return session, args.Error(1)
}
