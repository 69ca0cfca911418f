package repositories

import "github.com/appleman9709/bcb-with-db/models"

type FamilyRepository interface {
	FindAll() ([]models.Family, error)
	FindByID(id uint) (models.Family, error)
	FindByName(name string) (models.Family, error)
	Create(family models.Family) (models.Family, error)
	Members(familyID uint) ([]models.FamilyMember, error)
	AddMember(member models.FamilyMember) (models.FamilyMember, error)
}
