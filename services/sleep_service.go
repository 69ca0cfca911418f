package services

import (
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"
)

type SleepService struct {
	SleepRepo repositories.SleepRepository
	Now       func() time.Time
}

func NewSleepService(sleepRepo repositories.SleepRepository) *SleepService {
	return &SleepService{SleepRepo: sleepRepo, Now: LocalNow}
}

// StartSleep открывает новую сессию сна. Предыдущая активная сессия
// семьи закрывается тем же моментом времени внутри одной транзакции.
func (s *SleepService) StartSleep(familyID uint, authorID int64, authorName, authorRole string) (models.SleepSession, error) {
	session := models.SleepSession{
		FamilyID:   familyID,
		AuthorID:   authorID,
		AuthorName: authorName,
		AuthorRole: authorRole,
		StartTime:  s.Now().UTC(),
		IsActive:   true,
	}
	return s.SleepRepo.StartSession(session)
}

// EndSleep закрывает активную сессию. Если спать никто не начинал,
// операция ничего не делает и возвращает nil без ошибки.
func (s *SleepService) EndSleep(familyID uint) (*models.SleepSession, error) {
	return s.SleepRepo.EndSession(familyID, s.Now().UTC())
}
