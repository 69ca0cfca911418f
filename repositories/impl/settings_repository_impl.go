package impl

import (
	"errors"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type SettingsRepositoryImpl struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) repositories.SettingsRepository {
	return &SettingsRepositoryImpl{DB: db}
}

func (r *SettingsRepositoryImpl) FindByFamilyID(familyID uint) (*models.Settings, error) {
	var settings models.Settings
	err := r.DB.Where("family_id = ?", familyID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) Save(settings models.Settings) (models.Settings, error) {
	if err := r.DB.Save(&settings).Error; err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
