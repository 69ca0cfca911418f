package services

import (
	"errors"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type FamilyInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LastEvent — самое свежее событие вида за все время (окно периода на
// него не влияет). Status заполняется только для кормлений и подгузников.
type LastEvent struct {
	Timestamp    *time.Time `json:"timestamp"`
	AuthorRole   *string    `json:"author_role"`
	AuthorName   *string    `json:"author_name"`
	ActivityType *string    `json:"activity_type,omitempty"`
	TimeAgo      *TimeAgo   `json:"time_ago"`
	Status       Status     `json:"status,omitempty"`
}

type LastEvents struct {
	Feeding  LastEvent `json:"feeding"`
	Diaper   LastEvent `json:"diaper"`
	Bath     LastEvent `json:"bath"`
	Activity LastEvent `json:"activity"`
}

type SleepStatus struct {
	IsActive   bool       `json:"is_active"`
	StartTime  *time.Time `json:"start_time"`
	AuthorRole *string    `json:"author_role"`
	AuthorName *string    `json:"author_name"`
	Duration   *TimeAgo   `json:"duration"`
}

type PeriodStats struct {
	Feedings   int64 `json:"feedings"`
	Diapers    int64 `json:"diapers"`
	Baths      int64 `json:"baths"`
	Activities int64 `json:"activities"`
}

type Dashboard struct {
	Family     FamilyInfo        `json:"family"`
	Settings   EffectiveSettings `json:"settings"`
	LastEvents LastEvents        `json:"last_events"`
	Sleep      SleepStatus       `json:"sleep"`
	TodayStats PeriodStats       `json:"today_stats"`
}

type DashboardService struct {
	FamilyRepo   repositories.FamilyRepository
	SettingsRepo repositories.SettingsRepository
	EventRepo    repositories.EventRepository
	SleepRepo    repositories.SleepRepository
	Now          func() time.Time
}

func NewDashboardService(
	familyRepo repositories.FamilyRepository,
	settingsRepo repositories.SettingsRepository,
	eventRepo repositories.EventRepository,
	sleepRepo repositories.SleepRepository,
) *DashboardService {
	return &DashboardService{
		FamilyRepo:   familyRepo,
		SettingsRepo: settingsRepo,
		EventRepo:    eventRepo,
		SleepRepo:    sleepRepo,
		Now:          LocalNow,
	}
}

// GetDashboard собирает снимок состояния семьи: последние события каждого
// вида, активный сон и счетчики за запрошенный период. Любая ошибка
// хранилища прерывает сборку целиком, частичный снимок не возвращается.
func (s *DashboardService) GetDashboard(familyID uint, period string) (*Dashboard, error) {
	family, err := s.FamilyRepo.FindByID(familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFamilyNotFound
		}
		return nil, err
	}

	settingsRow, err := s.SettingsRepo.FindByFamilyID(familyID)
	if err != nil {
		return nil, err
	}
	settings := NewEffectiveSettings(settingsRow)

	now := s.Now()
	from, to := PeriodWindow(period, now)

	lastFeeding, err := s.EventRepo.LastFeeding(familyID)
	if err != nil {
		return nil, err
	}
	lastDiaper, err := s.EventRepo.LastDiaper(familyID)
	if err != nil {
		return nil, err
	}
	lastBath, err := s.EventRepo.LastBath(familyID)
	if err != nil {
		return nil, err
	}
	lastActivity, err := s.EventRepo.LastActivity(familyID)
	if err != nil {
		return nil, err
	}

	stats := PeriodStats{}
	if stats.Feedings, err = s.EventRepo.CountBetween(models.EventFeeding, familyID, from, to); err != nil {
		return nil, err
	}
	if stats.Diapers, err = s.EventRepo.CountBetween(models.EventDiaper, familyID, from, to); err != nil {
		return nil, err
	}
	if stats.Baths, err = s.EventRepo.CountBetween(models.EventBath, familyID, from, to); err != nil {
		return nil, err
	}
	if stats.Activities, err = s.EventRepo.CountBetween(models.EventActivity, familyID, from, to); err != nil {
		return nil, err
	}

	activeSleep, err := s.SleepRepo.ActiveSession(familyID)
	if err != nil {
		return nil, err
	}

	dashboard := &Dashboard{
		Family:     FamilyInfo{ID: family.ID, Name: family.Name},
		Settings:   settings,
		TodayStats: stats,
		LastEvents: LastEvents{
			Feeding:  feedingView(lastFeeding, now),
			Diaper:   diaperView(lastDiaper, now),
			Bath:     bathView(lastBath, now),
			Activity: activityView(lastActivity, now),
		},
		Sleep: sleepView(activeSleep, now),
	}

	if dashboard.LastEvents.Feeding.TimeAgo != nil {
		dashboard.LastEvents.Feeding.Status = Classify(*dashboard.LastEvents.Feeding.TimeAgo, settings.FeedInterval)
	}
	if dashboard.LastEvents.Diaper.TimeAgo != nil {
		dashboard.LastEvents.Diaper.Status = Classify(*dashboard.LastEvents.Diaper.TimeAgo, settings.DiaperInterval)
	}

	return dashboard, nil
}

func eventView(timestamp time.Time, role, name string, now time.Time) LastEvent {
	ago := ElapsedSince(timestamp, now)
	return LastEvent{
		Timestamp:  &timestamp,
		AuthorRole: &role,
		AuthorName: &name,
		TimeAgo:    &ago,
	}
}

func feedingView(feeding *models.Feeding, now time.Time) LastEvent {
	if feeding == nil {
		return LastEvent{}
	}
	return eventView(feeding.Timestamp, feeding.AuthorRole, feeding.AuthorName, now)
}

func diaperView(diaper *models.Diaper, now time.Time) LastEvent {
	if diaper == nil {
		return LastEvent{}
	}
	return eventView(diaper.Timestamp, diaper.AuthorRole, diaper.AuthorName, now)
}

func bathView(bath *models.Bath, now time.Time) LastEvent {
	if bath == nil {
		return LastEvent{}
	}
	return eventView(bath.Timestamp, bath.AuthorRole, bath.AuthorName, now)
}

func activityView(activity *models.Activity, now time.Time) LastEvent {
	if activity == nil {
		return LastEvent{}
	}
	view := eventView(activity.Timestamp, activity.AuthorRole, activity.AuthorName, now)
	view.ActivityType = &activity.ActivityType
	return view
}

func sleepView(session *models.SleepSession, now time.Time) SleepStatus {
	if session == nil {
		return SleepStatus{IsActive: false}
	}
	duration := ElapsedSince(session.StartTime, now)
	return SleepStatus{
		IsActive:   true,
		StartTime:  &session.StartTime,
		AuthorRole: &session.AuthorRole,
		AuthorName: &session.AuthorName,
		Duration:   &duration,
	}
}
