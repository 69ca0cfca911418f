package services

import (
	"testing"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCreateFamilyReturnsExistingByName(t *testing.T) {
	familyRepo := new(mocks.FamilyRepository)
	service := NewFamilyService(familyRepo)

	familyRepo.On("FindByName", "Smith").Return(models.Family{ID: 3, Name: "Smith"}, nil)

	family, created, err := service.CreateFamily("Smith")

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(3), family.ID)
	familyRepo.AssertNotCalled(t, "Create")
}

func TestCreateFamilyInsertsNewName(t *testing.T) {
	familyRepo := new(mocks.FamilyRepository)
	service := NewFamilyService(familyRepo)

	familyRepo.On("FindByName", "Jones").Return(models.Family{}, gorm.ErrRecordNotFound)
	familyRepo.On("Create", models.Family{Name: "Jones"}).Return(models.Family{ID: 4, Name: "Jones"}, nil)

	family, created, err := service.CreateFamily("Jones")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(4), family.ID)
}

func TestGetMembersUnknownFamily(t *testing.T) {
	familyRepo := new(mocks.FamilyRepository)
	service := NewFamilyService(familyRepo)

	familyRepo.On("FindByID", uint(99)).Return(models.Family{}, gorm.ErrRecordNotFound)

	_, _, err := service.GetMembers(99)

	assert.ErrorIs(t, err, ErrFamilyNotFound)
}

func TestAddMemberChecksFamilyExists(t *testing.T) {
	familyRepo := new(mocks.FamilyRepository)
	service := NewFamilyService(familyRepo)

	familyRepo.On("FindByID", uint(99)).Return(models.Family{}, gorm.ErrRecordNotFound)

	_, err := service.AddMember(models.FamilyMember{FamilyID: 99, UserID: 1, Name: "Anna"})

	assert.ErrorIs(t, err, ErrFamilyNotFound)
	familyRepo.AssertNotCalled(t, "AddMember")
}

func TestAddMember(t *testing.T) {
	familyRepo := new(mocks.FamilyRepository)
	service := NewFamilyService(familyRepo)

	member := models.FamilyMember{FamilyID: 1, UserID: 7, Name: "Anna", Role: "mom"}
	familyRepo.On("FindByID", uint(1)).Return(models.Family{ID: 1, Name: "Smith"}, nil)
	familyRepo.On("AddMember", member).Return(models.FamilyMember{ID: 2, FamilyID: 1, UserID: 7, Name: "Anna", Role: "mom"}, nil)

	saved, err := service.AddMember(member)

	assert.NoError(t, err)
	assert.Equal(t, uint(2), saved.ID)
}
