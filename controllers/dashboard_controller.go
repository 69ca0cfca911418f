package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service DashboardServiceInterface
}

func NewDashboardController(service DashboardServiceInterface) *DashboardController {
	return &DashboardController{Service: service}
}

func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	period := c.DefaultQuery("period", "today")

	dashboard, err := ctrl.Service.GetDashboard(familyID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
