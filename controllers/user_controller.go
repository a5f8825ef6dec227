package controllers

import (
	"net/http"

	"github.com/mikespe/calcalc2.0/middlewares"
	"github.com/mikespe/calcalc2.0/services"
	"github.com/mikespe/calcalc2.0/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, services.ProfileMap(user))
}

func UpdateProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := services.UpdateUserProfile(user, input); err != nil {
		internalError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, services.ProfileMap(user))
}

// GetCalorieTarget computes daily calorie numbers from the live profile.
// It depends on AuthMiddleware's re-fetch: a profile edit is reflected on
// the very next request, not when the token happens to be reissued.
func GetCalorieTarget(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	bmr, err := utils.BMR(user.Weight, user.Height, user.Age, user.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile is missing body metrics: " + err.Error()})
		return
	}
	multiplier, err := utils.ActivityMultiplier(user.ActivityLevel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile is missing a valid activity level"})
		return
	}

	maintenance := utils.MaintenanceCalories(bmr, multiplier)
	c.JSON(http.StatusOK, gin.H{
		"bmr":         int(bmr),
		"maintenance": maintenance,
		"goal":        utils.GoalCalories(maintenance, user.Goal),
	})
}
