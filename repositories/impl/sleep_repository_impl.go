package impl

import (
	"errors"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type SleepRepositoryImpl struct {
	DB *gorm.DB
}

func NewSleepRepository(db *gorm.DB) repositories.SleepRepository {
	return &SleepRepositoryImpl{DB: db}
}

func (r *SleepRepositoryImpl) ActiveSession(familyID uint) (*models.SleepSession, error) {
	var session models.SleepSession
	err := r.DB.Where("family_id = ? AND is_active = ?", familyID, true).
		Order("start_time DESC").First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SleepRepositoryImpl) StartSession(session models.SleepSession) (models.SleepSession, error) {
	// Закрытие старой сессии и вставка новой выполняются одной транзакцией.
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SleepSession{}).
			Where("family_id = ? AND is_active = ?", session.FamilyID, true).
			Updates(map[string]interface{}{"is_active": false, "end_time": session.StartTime}).Error; err != nil {
			return err
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return models.SleepSession{}, err
	}
	return session, nil
}

func (r *SleepRepositoryImpl) EndSession(familyID uint, endTime time.Time) (*models.SleepSession, error) {
	result := r.DB.Model(&models.SleepSession{}).
		Where("family_id = ? AND is_active = ?", familyID, true).
		Updates(map[string]interface{}{"is_active": false, "end_time": endTime})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var session models.SleepSession
	err := r.DB.Where("family_id = ? AND is_active = ?", familyID, false).
		Order("start_time DESC").First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}
