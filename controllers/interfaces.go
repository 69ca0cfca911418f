package controllers

import (
	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/services"
)

// Интерфейсы сервисов, от которых зависят контроллеры. Нужны, чтобы в
// тестах подменять сервисы моками.

type FamilyServiceInterface interface {
	ListFamilies() ([]models.Family, error)
	CreateFamily(name string) (models.Family, bool, error)
	GetMembers(familyID uint) (models.Family, []models.FamilyMember, error)
	AddMember(member models.FamilyMember) (models.FamilyMember, error)
}

type DashboardServiceInterface interface {
	GetDashboard(familyID uint, period string) (*services.Dashboard, error)
}

type HistoryServiceInterface interface {
	GetHistory(familyID uint, days int) (*services.History, error)
}

type EventServiceInterface interface {
	LogFeeding(feeding models.Feeding) (models.Feeding, error)
	LogDiaper(diaper models.Diaper) (models.Diaper, error)
	LogBath(bath models.Bath) (models.Bath, error)
	LogActivity(activity models.Activity) (models.Activity, error)
}

type SleepServiceInterface interface {
	StartSleep(familyID uint, authorID int64, authorName, authorRole string) (models.SleepSession, error)
	EndSleep(familyID uint) (*models.SleepSession, error)
}

type SettingsServiceInterface interface {
	GetSettings(familyID uint) (services.EffectiveSettings, error)
	UpdateSettings(familyID uint, update services.SettingsUpdate) (models.Settings, error)
}

// Handlers объединяет контроллеры для регистрации маршрутов.
type Handlers struct {
	Health    *HealthController
	Family    *FamilyController
	Dashboard *DashboardController
	History   *HistoryController
	Events    *EventController
	Sleep     *SleepController
	Settings  *SettingsController
}
