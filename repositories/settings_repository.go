package repositories

import "github.com/appleman9709/bcb-with-db/models"

type SettingsRepository interface {
	// FindByFamilyID возвращает nil без ошибки, если строки настроек нет.
	FindByFamilyID(familyID uint) (*models.Settings, error)
	Save(settings models.Settings) (models.Settings, error)
}
