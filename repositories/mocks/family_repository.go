package mocks

import (
	"github.com/appleman9709/bcb-with-db/models"

	"github.com/stretchr/testify/mock"
)

// FamilyRepository — мок репозитория семей для тестов сервисов.
type FamilyRepository struct {
	mock.Mock
}

func (m *FamilyRepository) FindAll() ([]models.Family, error) {
	args := m.Called()
	return args.Get(0).([]models.Family), args.Error(1)
}

func (m *FamilyRepository) FindByID(id uint) (models.Family, error) {
	args := m.Called(id)
	return args.Get(0).(models.Family), args.Error(1)
}

func (m *FamilyRepository) FindByName(name string) (models.Family, error) {
	args := m.Called(name)
	return args.Get(0).(models.Family), args.Error(1)
}

func (m *FamilyRepository) Create(family models.Family) (models.Family, error) {
	args := m.Called(family)
	return args.Get(0).(models.Family), args.Error(1)
}

func (m *FamilyRepository) Members(familyID uint) ([]models.FamilyMember, error) {
	args := m.Called(familyID)
	return args.Get(0).([]models.FamilyMember), args.Error(1)
}

func (m *FamilyRepository) AddMember(member models.FamilyMember) (models.FamilyMember, error) {
	args := m.Called(member)
	return args.Get(0).(models.FamilyMember), args.Error(1)
}
