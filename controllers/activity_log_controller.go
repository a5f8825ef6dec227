package controllers

import (
	"net/http"

	"github.com/mikespe/calcalc2.0/middlewares"
	"github.com/mikespe/calcalc2.0/services"

	"github.com/gin-gonic/gin"
)

func ListActivityLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	logs, err := services.ListActivityLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch activity logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func CreateActivityLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var body struct {
		Activity string `json:"activity"`
		Date     string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Activity == "" || body.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Activity and date are required"})
		return
	}

	date, err := services.ParseLogDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	log, err := services.CreateActivityLog(user.ID, body.Activity, date)
	if err != nil {
		internalError(c, err, "Failed to create activity log")
		return
	}
	c.JSON(http.StatusCreated, log)
}
