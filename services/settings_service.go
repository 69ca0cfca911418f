package services

import (
	"errors"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

// Значения по умолчанию, когда у семьи нет строки настроек.
const (
	DefaultFeedInterval   = 3
	DefaultDiaperInterval = 2
)

// EffectiveSettings — настройки семьи с подставленными умолчаниями.
type EffectiveSettings struct {
	FeedInterval            int     `json:"feed_interval"`
	DiaperInterval          int     `json:"diaper_interval"`
	BabyAgeMonths           int     `json:"baby_age_months"`
	BabyBirthDate           *string `json:"baby_birth_date"`
	TipsEnabled             bool    `json:"tips_enabled"`
	BathReminderEnabled     bool    `json:"bath_reminder_enabled"`
	ActivityReminderEnabled bool    `json:"activity_reminder_enabled"`
}

func NewEffectiveSettings(row *models.Settings) EffectiveSettings {
	if row == nil {
		return EffectiveSettings{
			FeedInterval:            DefaultFeedInterval,
			DiaperInterval:          DefaultDiaperInterval,
			TipsEnabled:             true,
			BathReminderEnabled:     true,
			ActivityReminderEnabled: true,
		}
	}
	return EffectiveSettings{
		FeedInterval:            row.FeedInterval,
		DiaperInterval:          row.DiaperInterval,
		BabyAgeMonths:           row.BabyAgeMonths,
		BabyBirthDate:           row.BabyBirthDate,
		TipsEnabled:             row.TipsEnabled,
		BathReminderEnabled:     row.BathReminderEnabled,
		ActivityReminderEnabled: row.ActivityReminderEnabled,
	}
}

// SettingsUpdate — частичное обновление: nil-поля не трогаются.
type SettingsUpdate struct {
	FeedInterval            *int    `json:"feed_interval"`
	DiaperInterval          *int    `json:"diaper_interval"`
	BabyAgeMonths           *int    `json:"baby_age_months"`
	BabyBirthDate           *string `json:"baby_birth_date"`
	TipsEnabled             *bool   `json:"tips_enabled"`
	BathReminderEnabled     *bool   `json:"bath_reminder_enabled"`
	ActivityReminderEnabled *bool   `json:"activity_reminder_enabled"`
}

type SettingsService struct {
	FamilyRepo   repositories.FamilyRepository
	SettingsRepo repositories.SettingsRepository
}

func NewSettingsService(familyRepo repositories.FamilyRepository, settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{FamilyRepo: familyRepo, SettingsRepo: settingsRepo}
}

func (s *SettingsService) checkFamily(familyID uint) error {
	if _, err := s.FamilyRepo.FindByID(familyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFamilyNotFound
		}
		return err
	}
	return nil
}

func (s *SettingsService) GetSettings(familyID uint) (EffectiveSettings, error) {
	if err := s.checkFamily(familyID); err != nil {
		return EffectiveSettings{}, err
	}
	row, err := s.SettingsRepo.FindByFamilyID(familyID)
	if err != nil {
		return EffectiveSettings{}, err
	}
	return NewEffectiveSettings(row), nil
}

// UpdateSettings создает строку настроек при первом изменении и дальше
// правит ее по месту.
func (s *SettingsService) UpdateSettings(familyID uint, update SettingsUpdate) (models.Settings, error) {
	if err := s.checkFamily(familyID); err != nil {
		return models.Settings{}, err
	}

	row, err := s.SettingsRepo.FindByFamilyID(familyID)
	if err != nil {
		return models.Settings{}, err
	}
	if row == nil {
		row = &models.Settings{
			FamilyID:                familyID,
			FeedInterval:            DefaultFeedInterval,
			DiaperInterval:          DefaultDiaperInterval,
			TipsEnabled:             true,
			BathReminderEnabled:     true,
			ActivityReminderEnabled: true,
		}
	}

	if update.FeedInterval != nil {
		row.FeedInterval = *update.FeedInterval
	}
	if update.DiaperInterval != nil {
		row.DiaperInterval = *update.DiaperInterval
	}
	if update.BabyAgeMonths != nil {
		row.BabyAgeMonths = *update.BabyAgeMonths
	}
	if update.BabyBirthDate != nil {
		row.BabyBirthDate = update.BabyBirthDate
	}
	if update.TipsEnabled != nil {
		row.TipsEnabled = *update.TipsEnabled
	}
	if update.BathReminderEnabled != nil {
		row.BathReminderEnabled = *update.BathReminderEnabled
	}
	if update.ActivityReminderEnabled != nil {
		row.ActivityReminderEnabled = *update.ActivityReminderEnabled
	}

	return s.SettingsRepo.Save(*row)
}
