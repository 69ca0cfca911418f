package controllers

import (
	"net/http"

	"github.com/appleman9709/bcb-with-db/models"

	"github.com/gin-gonic/gin"
)

type FamilyController struct {
	Service FamilyServiceInterface
}

func NewFamilyController(service FamilyServiceInterface) *FamilyController {
	return &FamilyController{Service: service}
}

func (ctrl *FamilyController) ListFamilies(c *gin.Context) {
	families, err := ctrl.Service.ListFamilies()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"families": families})
}

func (ctrl *FamilyController) CreateFamily(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Family name is required"})
		return
	}

	family, created, err := ctrl.Service.CreateFamily(input.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	// Повторный POST с тем же именем возвращает существующую семью.
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, family)
}

func (ctrl *FamilyController) ListMembers(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	family, members, err := ctrl.Service.GetMembers(familyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"family_id":   family.ID,
		"family_name": family.Name,
		"members":     members,
	})
}

func (ctrl *FamilyController) AddMember(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	var input struct {
		UserID int64  `json:"user_id"`
		Name   string `json:"name"`
		Role   string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.UserID == 0 || input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}
	if input.Role == "" {
		input.Role = "parent"
	}

	member, err := ctrl.Service.AddMember(models.FamilyMember{
		FamilyID: familyID,
		UserID:   input.UserID,
		Name:     input.Name,
		Role:     input.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}
