package services

import (
	"errors"
	"testing"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newDashboardFixture() (*DashboardService, *mocks.FamilyRepository, *mocks.SettingsRepository, *mocks.EventRepository, *mocks.SleepRepository) {
	familyRepo := new(mocks.FamilyRepository)
	settingsRepo := new(mocks.SettingsRepository)
	eventRepo := new(mocks.EventRepository)
	sleepRepo := new(mocks.SleepRepository)
	service := NewDashboardService(familyRepo, settingsRepo, eventRepo, sleepRepo)
	return service, familyRepo, settingsRepo, eventRepo, sleepRepo
}

// expectNoEvents настраивает пустые журналы для всех четырех видов.
func expectNoEvents(eventRepo *mocks.EventRepository) {
	eventRepo.On("LastFeeding", uint(1)).Return(nil, nil)
	eventRepo.On("LastDiaper", uint(1)).Return(nil, nil)
	eventRepo.On("LastBath", uint(1)).Return(nil, nil)
	eventRepo.On("LastActivity", uint(1)).Return(nil, nil)
	for _, kind := range []models.EventKind{models.EventFeeding, models.EventDiaper, models.EventBath, models.EventActivity} {
		eventRepo.On("CountBetween", kind, uint(1), mock.Anything, mock.Anything).Return(int64(0), nil)
	}
}

func TestGetDashboardFamilyNotFound(t *testing.T) {
	service, familyRepo, _, _, _ := newDashboardFixture()
	familyRepo.On("FindByID", uint(42)).Return(models.Family{}, gorm.ErrRecordNotFound)

	_, err := service.GetDashboard(42, "today")

	assert.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestGetDashboardEmptyFamily(t *testing.T) {
	service, familyRepo, settingsRepo, eventRepo, sleepRepo := newDashboardFixture()
	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	settingsRepo.On("FindByFamilyID", uint(1)).Return(nil, nil)
	expectNoEvents(eventRepo)
	sleepRepo.On("ActiveSession", uint(1)).Return(nil, nil)

	dashboard, err := service.GetDashboard(1, "today")

	assert.NoError(t, err)
	// Семья без событий: все last_events пустые, счетчики нулевые.
	assert.Nil(t, dashboard.LastEvents.Feeding.Timestamp)
	assert.Nil(t, dashboard.LastEvents.Feeding.TimeAgo)
	assert.Nil(t, dashboard.LastEvents.Diaper.Timestamp)
	assert.Nil(t, dashboard.LastEvents.Bath.Timestamp)
	assert.Nil(t, dashboard.LastEvents.Activity.Timestamp)
	assert.Equal(t, Status(""), dashboard.LastEvents.Feeding.Status)
	assert.Equal(t, PeriodStats{}, dashboard.TodayStats)
	assert.False(t, dashboard.Sleep.IsActive)
	assert.Nil(t, dashboard.Sleep.Duration)
	// Строки настроек нет — подставлены умолчания.
	assert.Equal(t, DefaultFeedInterval, dashboard.Settings.FeedInterval)
	assert.Equal(t, DefaultDiaperInterval, dashboard.Settings.DiaperInterval)
	assert.True(t, dashboard.Settings.TipsEnabled)
}

func TestGetDashboardFeedingNinetyMinutesAgo(t *testing.T) {
	service, familyRepo, settingsRepo, eventRepo, sleepRepo := newDashboardFixture()
	now := time.Date(2025, 8, 31, 15, 0, 0, 0, Location)
	service.Now = func() time.Time { return now }

	feedingTime := now.Add(-90 * time.Minute).UTC()
	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	settingsRepo.On("FindByFamilyID", uint(1)).Return(nil, nil)
	eventRepo.On("LastFeeding", uint(1)).Return(&models.Feeding{
		FamilyID: 1, AuthorName: "Anna", AuthorRole: "mom", Timestamp: feedingTime,
	}, nil)
	eventRepo.On("LastDiaper", uint(1)).Return(nil, nil)
	eventRepo.On("LastBath", uint(1)).Return(nil, nil)
	eventRepo.On("LastActivity", uint(1)).Return(nil, nil)
	for _, kind := range []models.EventKind{models.EventFeeding, models.EventDiaper, models.EventBath, models.EventActivity} {
		eventRepo.On("CountBetween", kind, uint(1), mock.Anything, mock.Anything).Return(int64(1), nil)
	}
	sleepRepo.On("ActiveSession", uint(1)).Return(nil, nil)

	dashboard, err := service.GetDashboard(1, "today")

	assert.NoError(t, err)
	feeding := dashboard.LastEvents.Feeding
	assert.Equal(t, &TimeAgo{Hours: 1, Minutes: 30}, feeding.TimeAgo)
	// 1.5 часа при интервале 3 — еще good.
	assert.Equal(t, StatusGood, feeding.Status)
	assert.Equal(t, "Anna", *feeding.AuthorName)
	assert.Equal(t, "mom", *feeding.AuthorRole)
}

func TestGetDashboardOverdueDiaperUsesStoredInterval(t *testing.T) {
	service, familyRepo, settingsRepo, eventRepo, sleepRepo := newDashboardFixture()
	now := time.Date(2025, 8, 31, 15, 0, 0, 0, Location)
	service.Now = func() time.Time { return now }

	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	settingsRepo.On("FindByFamilyID", uint(1)).Return(&models.Settings{
		FamilyID: 1, FeedInterval: 4, DiaperInterval: 1, TipsEnabled: false,
	}, nil)
	eventRepo.On("LastFeeding", uint(1)).Return(nil, nil)
	eventRepo.On("LastDiaper", uint(1)).Return(&models.Diaper{
		FamilyID: 1, AuthorName: "Ivan", AuthorRole: "dad", Timestamp: now.Add(-2 * time.Hour).UTC(),
	}, nil)
	eventRepo.On("LastBath", uint(1)).Return(nil, nil)
	eventRepo.On("LastActivity", uint(1)).Return(nil, nil)
	for _, kind := range []models.EventKind{models.EventFeeding, models.EventDiaper, models.EventBath, models.EventActivity} {
		eventRepo.On("CountBetween", kind, uint(1), mock.Anything, mock.Anything).Return(int64(0), nil)
	}
	sleepRepo.On("ActiveSession", uint(1)).Return(nil, nil)

	dashboard, err := service.GetDashboard(1, "today")

	assert.NoError(t, err)
	assert.Equal(t, 4, dashboard.Settings.FeedInterval)
	assert.False(t, dashboard.Settings.TipsEnabled)
	// 2 часа при интервале 1 — уже overdue.
	assert.Equal(t, StatusOverdue, dashboard.LastEvents.Diaper.Status)
}

func TestGetDashboardActiveSleepDuration(t *testing.T) {
	service, familyRepo, settingsRepo, eventRepo, sleepRepo := newDashboardFixture()
	now := time.Date(2025, 8, 31, 15, 0, 0, 0, Location)
	service.Now = func() time.Time { return now }

	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	settingsRepo.On("FindByFamilyID", uint(1)).Return(nil, nil)
	expectNoEvents(eventRepo)
	sleepRepo.On("ActiveSession", uint(1)).Return(&models.SleepSession{
		FamilyID: 1, AuthorName: "Anna", AuthorRole: "mom",
		StartTime: now.Add(-75 * time.Minute).UTC(), IsActive: true,
	}, nil)

	dashboard, err := service.GetDashboard(1, "week")

	assert.NoError(t, err)
	assert.True(t, dashboard.Sleep.IsActive)
	assert.Equal(t, &TimeAgo{Hours: 1, Minutes: 15}, dashboard.Sleep.Duration)
	assert.Equal(t, "Anna", *dashboard.Sleep.AuthorName)
}

func TestGetDashboardStoreFailureAbortsWhole(t *testing.T) {
	service, familyRepo, settingsRepo, eventRepo, _ := newDashboardFixture()
	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	settingsRepo.On("FindByFamilyID", uint(1)).Return(nil, nil)
	eventRepo.On("LastFeeding", uint(1)).Return(nil, errors.New("connection reset"))

	dashboard, err := service.GetDashboard(1, "today")

	// Частичный снимок не возвращается.
	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
