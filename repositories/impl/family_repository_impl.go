package impl

import (
	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/repositories"

	"gorm.io/gorm"
)

type FamilyRepositoryImpl struct {
	DB *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) repositories.FamilyRepository {
	return &FamilyRepositoryImpl{DB: db}
}

func (r *FamilyRepositoryImpl) FindAll() ([]models.Family, error) {
	var families []models.Family
	if err := r.DB.Order("name").Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *FamilyRepositoryImpl) FindByID(id uint) (models.Family, error) {
	var family models.Family
	if err := r.DB.First(&family, id).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (r *FamilyRepositoryImpl) FindByName(name string) (models.Family, error) {
	var family models.Family
	if err := r.DB.Where("name = ?", name).First(&family).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (r *FamilyRepositoryImpl) Create(family models.Family) (models.Family, error) {
	if err := r.DB.Create(&family).Error; err != nil {
		return models.Family{}, err
	}
	return family, nil
}

func (r *FamilyRepositoryImpl) Members(familyID uint) ([]models.FamilyMember, error) {
	var members []models.FamilyMember
	if err := r.DB.Where("family_id = ?", familyID).Order("role, name").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *FamilyRepositoryImpl) AddMember(member models.FamilyMember) (models.FamilyMember, error) {
	if err := r.DB.Create(&member).Error; err != nil {
		return models.FamilyMember{}, err
	}
	return member, nil
}
