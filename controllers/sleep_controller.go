package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type SleepController struct {
	Service SleepServiceInterface
}

func NewSleepController(service SleepServiceInterface) *SleepController {
	return &SleepController{Service: service}
}

type sleepInput struct {
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	AuthorRole string `json:"author_role"`
}

func bindSleepInput(c *gin.Context) (sleepInput, bool) {
	var input sleepInput
	if err := c.ShouldBindJSON(&input); err != nil || input.AuthorID == 0 || input.AuthorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return sleepInput{}, false
	}
	if input.AuthorRole == "" {
		input.AuthorRole = defaultAuthorRole
	}
	return input, true
}

func (ctrl *SleepController) StartSleep(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	input, ok := bindSleepInput(c)
	if !ok {
		return
	}

	session, err := ctrl.Service.StartSleep(familyID, input.AuthorID, input.AuthorName, input.AuthorRole)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (ctrl *SleepController) EndSleep(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	if _, ok := bindSleepInput(c); !ok {
		return
	}

	session, err := ctrl.Service.EndSleep(familyID)
	if err != nil {
		respondError(c, err)
		return
	}
	// Завершение без активной сессии — не ошибка.
	if session == nil {
		c.JSON(http.StatusOK, gin.H{"message": "No active sleep session"})
		return
	}
	c.JSON(http.StatusOK, session)
}
