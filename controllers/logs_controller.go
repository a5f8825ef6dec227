package controllers

import (
	"net/http"

	"github.com/mikespe/calcalc2.0/middlewares"
	"github.com/mikespe/calcalc2.0/services"

	"github.com/gin-gonic/gin"
)

// GetAllLogs returns every log kind for the current user in one response,
// each ordered newest date first.
func GetAllLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	calorieLogs, err := services.ListCalorieLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch logs")
		return
	}
	weightLogs, err := services.ListWeightLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch logs")
		return
	}
	activityLogs, err := services.ListActivityLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"calorieLogs":  calorieLogs,
		"weightLogs":   weightLogs,
		"activityLogs": activityLogs,
	})
}
