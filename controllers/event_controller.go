package controllers

import (
	"net/http"
	"time"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultAuthorRole   = "parent"
	defaultActivityType = "tummy_time"
)

type EventController struct {
	Service EventServiceInterface
}

func NewEventController(service EventServiceInterface) *EventController {
	return &EventController{Service: service}
}

// eventInput — общее тело POST-запросов всех четырех журналов.
// Метка времени задается клиентом, а не сервером.
type eventInput struct {
	AuthorID     int64  `json:"author_id"`
	AuthorName   string `json:"author_name"`
	AuthorRole   string `json:"author_role"`
	Timestamp    string `json:"timestamp"`
	ActivityType string `json:"activity_type"`
}

// bindEventInput валидирует тело и разбирает метку времени.
// При ошибке ответ уже записан, второй результат — false.
func bindEventInput(c *gin.Context) (eventInput, time.Time, bool) {
	var input eventInput
	if err := c.ShouldBindJSON(&input); err != nil || input.AuthorID == 0 || input.AuthorName == "" || input.Timestamp == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return eventInput{}, time.Time{}, false
	}
	timestamp, err := services.ParseTimestamp(input.Timestamp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid timestamp format"})
		return eventInput{}, time.Time{}, false
	}
	if input.AuthorRole == "" {
		input.AuthorRole = defaultAuthorRole
	}
	return input, timestamp, true
}

func (ctrl *EventController) AddFeeding(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	input, timestamp, ok := bindEventInput(c)
	if !ok {
		return
	}

	feeding, err := ctrl.Service.LogFeeding(models.Feeding{
		FamilyID:   familyID,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		AuthorRole: input.AuthorRole,
		Timestamp:  timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, feeding)
}

func (ctrl *EventController) AddDiaper(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	input, timestamp, ok := bindEventInput(c)
	if !ok {
		return
	}

	diaper, err := ctrl.Service.LogDiaper(models.Diaper{
		FamilyID:   familyID,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		AuthorRole: input.AuthorRole,
		Timestamp:  timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, diaper)
}

func (ctrl *EventController) AddBath(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	input, timestamp, ok := bindEventInput(c)
	if !ok {
		return
	}

	bath, err := ctrl.Service.LogBath(models.Bath{
		FamilyID:   familyID,
		AuthorID:   input.AuthorID,
		AuthorName: input.AuthorName,
		AuthorRole: input.AuthorRole,
		Timestamp:  timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bath)
}

func (ctrl *EventController) AddActivity(c *gin.Context) {
	familyID, ok := familyIDFromParam(c)
	if !ok {
		return
	}
	input, timestamp, ok := bindEventInput(c)
	if !ok {
		return
	}
	if input.ActivityType == "" {
		input.ActivityType = defaultActivityType
	}

	activity, err := ctrl.Service.LogActivity(models.Activity{
		FamilyID:     familyID,
		AuthorID:     input.AuthorID,
		AuthorName:   input.AuthorName,
		AuthorRole:   input.AuthorRole,
		ActivityType: input.ActivityType,
		Timestamp:    timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}
