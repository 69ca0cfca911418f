package mocks

import (
	"github.com/appleman9709/bcb-with-db/models"

	"github.com/stretchr/testify/mock"
)

// SettingsRepository — мок настроек семьи для тестов сервисов.
type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) FindByFamilyID(familyID uint) (*models.Settings, error) {
	args := m.Called(familyID)
	settings, _ := args.Get(0).(*models.Settings)
	return settings, args.Error(1)
}

func (m *SettingsRepository) Save(settings models.Settings) (models.Settings, error) {
	args := m.Called(settings)
	return args.Get(0).(models.Settings), args.Error(1)
}
