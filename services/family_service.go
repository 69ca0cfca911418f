package services

import (
	"errors"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type FamilyService struct {
	FamilyRepo repositories.FamilyRepository
}

func NewFamilyService(familyRepo repositories.FamilyRepository) *FamilyService {
	return &FamilyService{FamilyRepo: familyRepo}
}

func (s *FamilyService) ListFamilies() ([]models.Family, error) {
	return s.FamilyRepo.FindAll()
}

// CreateFamily работает как get_or_create: фронтенд логинится по имени
// семьи, поэтому повторный POST с тем же именем возвращает существующую
// строку. Второй результат — true, если семья была создана.
func (s *FamilyService) CreateFamily(name string) (models.Family, bool, error) {
	existing, err := s.FamilyRepo.FindByName(name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Family{}, false, err
	}

	family, err := s.FamilyRepo.Create(models.Family{Name: name})
	if err != nil {
		return models.Family{}, false, err
	}
	return family, true, nil
}

func (s *FamilyService) GetMembers(familyID uint) (models.Family, []models.FamilyMember, error) {
	family, err := s.FamilyRepo.FindByID(familyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Family{}, nil, ErrFamilyNotFound
		}
		return models.Family{}, nil, err
	}
	members, err := s.FamilyRepo.Members(familyID)
	if err != nil {
		return models.Family{}, nil, err
	}
	return family, members, nil
}

func (s *FamilyService) AddMember(member models.FamilyMember) (models.FamilyMember, error) {
	if _, err := s.FamilyRepo.FindByID(member.FamilyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FamilyMember{}, ErrFamilyNotFound
		}
		return models.FamilyMember{}, err
	}
	return s.FamilyRepo.AddMember(member)
}
