package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/mikespe/calcalc2.0/middlewares"
	"github.com/mikespe/calcalc2.0/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListWeightLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	logs, err := services.ListWeightLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch weight logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// CreateWeightLog records a weight for a calendar day. Posting twice for
// the same day overwrites the existing row instead of adding a second one.
func CreateWeightLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var body struct {
		Weight float64 `json:"weight"`
		Date   string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Weight is required and must be a positive number"})
		return
	}

	date := time.Now()
	if body.Date != "" {
		parsed, err := services.ParseLogDate(body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
			return
		}
		date = parsed
	}

	log, err := services.UpsertWeightLog(user.ID, body.Weight, date)
	if err != nil {
		internalError(c, err, "Failed to create weight log")
		return
	}
	c.JSON(http.StatusCreated, log)
}

func UpdateWeightLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	id, ok := logIDParam(c)
	if !ok {
		return
	}

	var body struct {
		Weight float64 `json:"weight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Weight <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Weight is required and must be a positive number"})
		return
	}

	log, err := services.UpdateWeightLog(user.ID, id, body.Weight)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight log not found"})
			return
		}
		internalError(c, err, "Failed to update weight log")
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteWeightLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	id, ok := logIDParam(c)
	if !ok {
		return
	}

	if err := services.DeleteWeightLog(user.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Weight log not found"})
			return
		}
		internalError(c, err, "Failed to delete weight log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Weight log deleted successfully"})
}
