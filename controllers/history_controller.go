package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultHistoryDays = 7

type HistoryController struct {
	Service HistoryServiceInterface
}

func NewHistoryController(service HistoryServiceInterface) *HistoryController {
	return &HistoryController{Service: service}
}

func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}

	// Нечисловое значение days не отклоняется, а заменяется умолчанием;
	// выход за диапазон обрезается на уровне сервиса.
	days := defaultHistoryDays
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}

	history, err := ctrl.Service.GetHistory(familyID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
