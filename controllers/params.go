package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/appleman9709/bcb-with-db/services"

	"github.com/gin-gonic/gin"
)

// familyIDFromParam разбирает :id маршрута. При некорректном значении
// сам пишет 400 и возвращает false.
func familyIDFromParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Family ID is required"})
		return 0, false
	}
	return uint(id), true
}

// respondError переводит ошибку сервиса в HTTP-ответ: отсутствующая
// семья — 404, все остальное — 500 с текстом ошибки.
func respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrFamilyNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
