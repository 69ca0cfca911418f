package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appleman9709/bcb-with-db/models"
	"github.com/appleman9709/bcb-with-db/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(familyID uint) (services.EffectiveSettings, error) {
	args := m.Called(familyID)
	return args.Get(0).(services.EffectiveSettings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(familyID uint, update services.SettingsUpdate) (models.Settings, error) {
	args := m.Called(familyID, update)
	return args.Get(0).(models.Settings), args.Error(1)
}

func newSettingsRouter(service SettingsServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewSettingsController(service)
	r.GET("/family/:id/settings", ctrl.GetSettings)
	r.PUT("/family/:id/settings", ctrl.UpdateSettings)
	return r
}

func TestGetSettingsReturnsEffectiveValues(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("GetSettings", uint(1)).Return(services.EffectiveSettings{
		FeedInterval:            3,
		DiaperInterval:          2,
		TipsEnabled:             true,
		BathReminderEnabled:     true,
		ActivityReminderEnabled: true,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/family/1/settings", nil)
	newSettingsRouter(mockService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"feed_interval":3`)
	assert.Contains(t, w.Body.String(), `"baby_birth_date":null`)
	mockService.AssertExpectations(t)
}

func TestGetSettingsFamilyNotFound(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("GetSettings", uint(42)).Return(services.EffectiveSettings{}, services.ErrFamilyNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/family/42/settings", nil)
	newSettingsRouter(mockService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSettingsPartialPayload(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("UpdateSettings", uint(1), mock.MatchedBy(func(update services.SettingsUpdate) bool {
		return update.FeedInterval != nil && *update.FeedInterval == 4 &&
			update.DiaperInterval == nil
	})).Return(models.Settings{ID: 1, FamilyID: 1, FeedInterval: 4, DiaperInterval: 2}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/family/1/settings", bytes.NewBufferString(`{"feed_interval": 4}`))
	req.Header.Set("Content-Type", "application/json")
	newSettingsRouter(mockService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"feed_interval":4`)
	mockService.AssertExpectations(t)
}

func TestUpdateSettingsInvalidPayload(t *testing.T) {
	mockService := new(MockSettingsService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPut, "/family/1/settings", bytes.NewBufferString(`{"feed_interval": "четыре"}`))
	req.Header.Set("Content-Type", "application/json")
	newSettingsRouter(mockService).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid settings payload")
	mockService.AssertNotCalled(t, "UpdateSettings")
}
