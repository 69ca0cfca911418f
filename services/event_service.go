package services

import (
	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"
)

// EventService пишет в append-only журналы. Существование семьи при
// записи события не проверяется — так же вел себя исходный API.
type EventService struct {
	EventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) *EventService {
	return &EventService{EventRepo: eventRepo}
}

func (s *EventService) LogFeeding(feeding models.Feeding) (models.Feeding, error) {
	return s.EventRepo.CreateFeeding(feeding)
}

func (s *EventService) LogDiaper(diaper models.Diaper) (models.Diaper, error) {
	return s.EventRepo.CreateDiaper(diaper)
}

func (s *EventService) LogBath(bath models.Bath) (models.Bath, error) {
	return s.EventRepo.CreateBath(bath)
}

func (s *EventService) LogActivity(activity models.Activity) (models.Activity, error) {
	return s.EventRepo.CreateActivity(activity)
}
