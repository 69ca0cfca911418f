package controllers

import (
	"net/http"

	"github.com/appleman9709/bcb-with-db/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Service SettingsServiceInterface
}

func NewSettingsController(service SettingsServiceInterface) *SettingsController {
	return &SettingsController{Service: service}
}

func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	settings, err := ctrl.Service.GetSettings(familyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	var update services.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings payload"})
		return
	}

	settings, err := ctrl.Service.UpdateSettings(familyID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
