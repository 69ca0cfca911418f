package services

import (
	"errors"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type HistoryDay struct {
	Date       string `json:"date"`
	Feedings   int    `json:"feedings"`
	Diapers    int    `json:"diapers"`
	Baths      int    `json:"baths"`
	Activities int    `json:"activities"`
}

type History struct {
	FamilyID   uint         `json:"family_id"`
	FamilyName string       `json:"family_name"`
	PeriodDays int          `json:"period_days"`
	History    []HistoryDay `json:"history"`
}

type HistoryService struct {
	FamilyRepo repositories.FamilyRepository
	EventRepo  repositories.EventRepository
	Now        func() time.Time
}

func NewHistoryService(familyRepo repositories.FamilyRepository, eventRepo repositories.EventRepository) *HistoryService {
	return &HistoryService{FamilyRepo: familyRepo, EventRepo: eventRepo, Now: LocalNow}
}

// GetHistory возвращает ровно days корзин по календарным дням, от старых к
// новым. Дни без событий присутствуют с нулями. Каждый журнал читается
// одним запросом на все окно, раскладка по дням выполняется здесь.
// И границы окна, и раскладка считаются в одном и том же поясе UTC+7.
func (s *HistoryService) GetHistory(familyID uint, days int) (*History, error) {
	days = ClampDays(days)

	family, err := s.FamilyRepo.FindByID(familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFamilyNotFound
		}
		return nil, err
	}

	from, to := HistoryWindow(days, s.Now())

	buckets := make([]HistoryDay, days)
	index := make(map[string]*HistoryDay, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format(dateLayout)
		buckets[i] = HistoryDay{Date: date}
		index[date] = &buckets[i]
	}

	kinds := []struct {
		kind  models.EventKind
		count func(day *HistoryDay)
	}{
		{models.EventFeeding, func(day *HistoryDay) { day.Feedings++ }},
		{models.EventDiaper, func(day *HistoryDay) { day.Diapers++ }},
		{models.EventBath, func(day *HistoryDay) { day.Baths++ }},
		{models.EventActivity, func(day *HistoryDay) { day.Activities++ }},
	}
	for _, k := range kinds {
		stamps, err := s.EventRepo.TimestampsBetween(k.kind, familyID, from, to)
		if err != nil {
			return nil, err
		}
		for _, ts := range stamps {
			if day, ok := index[ts.In(Location).Format(dateLayout)]; ok {
				k.count(day)
			}
		}
	}

	return &History{
		FamilyID:   family.ID,
		FamilyName: family.Name,
		PeriodDays: days,
		History:    buckets,
	}, nil
}
