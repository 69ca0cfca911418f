package impl

import (
	"errors"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) repositories.EventRepository {
	return &EventRepositoryImpl{DB: db}
}

// eventModel сопоставляет вид события с его таблицей.
func eventModel(kind models.EventKind) interface{} {
	switch kind {
	case models.EventFeeding:
		return &models.Feeding{}
	case models.EventDiaper:
		return &models.Diaper{}
	case models.EventBath:
		return &models.Bath{}
	default:
		return &models.Activity{}
	}
}

func (r *EventRepositoryImpl) CreateFeeding(feeding models.Feeding) (models.Feeding, error) {
	if err := r.DB.Create(&feeding).Error; err != nil {
		return models.Feeding{}, err
	}
	return feeding, nil
}

func (r *EventRepositoryImpl) CreateDiaper(diaper models.Diaper) (models.Diaper, error) {
	if err := r.DB.Create(&diaper).Error; err != nil {
		return models.Diaper{}, err
	}
	return diaper, nil
}

func (r *EventRepositoryImpl) CreateBath(bath models.Bath) (models.Bath, error) {
	if err := r.DB.Create(&bath).Error; err != nil {
		return models.Bath{}, err
	}
	return bath, nil
}

func (r *EventRepositoryImpl) CreateActivity(activity models.Activity) (models.Activity, error) {
	if err := r.DB.Create(&activity).Error; err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (r *EventRepositoryImpl) LastFeeding(familyID uint) (*models.Feeding, error) {
	var feeding models.Feeding
	err := r.DB.Where("family_id = ?", familyID).Order("timestamp DESC").First(&feeding).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feeding, nil
}

func (r *EventRepositoryImpl) LastDiaper(familyID uint) (*models.Diaper, error) {
	var diaper models.Diaper
	err := r.DB.Where("family_id = ?", familyID).Order("timestamp DESC").First(&diaper).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &diaper, nil
}

func (r *EventRepositoryImpl) LastBath(familyID uint) (*models.Bath, error) {
	var bath models.Bath
	err := r.DB.Where("family_id = ?", familyID).Order("timestamp DESC").First(&bath).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bath, nil
}

func (r *EventRepositoryImpl) LastActivity(familyID uint) (*models.Activity, error) {
	var activity models.Activity
	err := r.DB.Where("family_id = ?", familyID).Order("timestamp DESC").First(&activity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *EventRepositoryImpl) CountBetween(kind models.EventKind, familyID uint, from, to time.Time) (int64, error) {
	var count int64
	err := r.DB.Model(eventModel(kind)).
		Where("family_id = ? AND timestamp BETWEEN ? AND ?", familyID, from, to).
		Count(&count).Error
	return count, err
}

func (r *EventRepositoryImpl) TimestampsBetween(kind models.EventKind, familyID uint, from, to time.Time) ([]time.Time, error) {
	var stamps []time.Time
	err := r.DB.Model(eventModel(kind)).
		Where("family_id = ? AND timestamp BETWEEN ? AND ?", familyID, from, to).
		Order("timestamp").
		Pluck("timestamp", &stamps).Error
	if err != nil {
		return nil, err
	}
	return stamps, nil
}
