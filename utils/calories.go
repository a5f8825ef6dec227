package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation.
// Expects weight in kilograms and height in centimeters.
func BMR(weightKg, heightCm float64, age int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// ActivityMultiplier parses the stored activity level ("1.2" .. "1.9").
func ActivityMultiplier(level string) (float64, error) {
	m, err := strconv.ParseFloat(strings.TrimSpace(level), 64)
	if err != nil || m < 1.0 || m > 2.5 {
		return 0, errors.New("invalid activity level")
	}
	return m, nil
}

// MaintenanceCalories is BMR scaled by the activity multiplier.
func MaintenanceCalories(bmr, multiplier float64) int {
	return int(math.Round(bmr * multiplier))
}

// GoalCalories applies a 20% deficit for "lose" and a 15% surplus for "gain".
func GoalCalories(maintenance int, goal string) int {
	switch goal {
	case "lose":
		return int(math.Round(float64(maintenance) * 0.8))
	case "gain":
		return int(math.Round(float64(maintenance) * 1.15))
	default:
		return maintenance
	}
}
