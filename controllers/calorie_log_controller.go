package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mikespe/calcalc2.0/middlewares"
	"github.com/mikespe/calcalc2.0/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ListCalorieLogs(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	logs, err := services.ListCalorieLogs(user.ID)
	if err != nil {
		internalError(c, err, "Failed to fetch calorie logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

func CreateCalorieLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var body struct {
		Calories int    `json:"calories"`
		Date     string `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Calories <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Calories is required and must be a positive number"})
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

	log, err := services.CreateCalorieLog(user.ID, body.Calories, date)
	if err != nil {
		internalError(c, err, "Failed to create calorie log")
		return
	}
	c.JSON(http.StatusCreated, log)
}

func UpdateCalorieLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	id, ok := logIDParam(c)
	if !ok {
		return
	}

	var body struct {
		Calories int `json:"calories"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Calories <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Calories is required and must be a positive number"})
		return
	}

	log, err := services.UpdateCalorieLog(user.ID, id, body.Calories)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calorie log not found"})
			return
		}
		internalError(c, err, "Failed to update calorie log")
		return
	}
	c.JSON(http.StatusOK, log)
}

func DeleteCalorieLog(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	id, ok := logIDParam(c)
	if !ok {
		return
	}

	if err := services.DeleteCalorieLog(user.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Calorie log not found"})
			return
		}
		internalError(c, err, "Failed to delete calorie log")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Calorie log deleted successfully"})
}

// logIDParam parses the :id path segment; a malformed id can never match a
// row, so it gets the same not-found answer as a foreign id.
func logIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Log not found"})
		return 0, false
	}
	return uint(id), true
}
