package models

type FamilyMember struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	FamilyID uint   `json:"family_id"`
	UserID   int64  `json:"user_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
