package services

import (
	"github.com/mikespe/calcalc2.0/config"
	"github.com/mikespe/calcalc2.0/models"
)

type ProfileInput struct {
	Name          string  `json:"name"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// ProfileMap shapes a user for API responses. The password hash never
// appears here regardless of serialization tags elsewhere.
func ProfileMap(user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"name":          user.Name,
		"height":        user.Height,
		"weight":        user.Weight,
		"age":           user.Age,
		"gender":        user.Gender,
		"activityLevel": user.ActivityLevel,
		"goal":          user.Goal,
		"createdAt":     user.CreatedAt,
		"updatedAt":     user.UpdatedAt,
	}
}

// UpdateUserProfile writes the allowed profile fields for the given user.
// Zero values are treated as "leave unchanged".
func UpdateUserProfile(user *models.User, input ProfileInput) error {
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}

	return config.DB.Save(user).Error
}
