package services

import (
	"errors"
	"time"

	"github.com/mikespe/calcalc2.0/config"
	"github.com/mikespe/calcalc2.0/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dayStartLocal truncates a timestamp to local midnight so per-day queries
// and the weight-log uniqueness constraint agree on what "a day" is.
func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// ParseLogDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func ParseLogDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ----- calorie logs -----

func ListCalorieLogs(userID uint) ([]models.CalorieLog, error) {
	var logs []models.CalorieLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func CreateCalorieLog(userID uint, calories int, date time.Time) (*models.CalorieLog, error) {
	log := models.CalorieLog{
		UserID:   userID,
		Date:     date,
		Calories: calories,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func UpdateCalorieLog(userID, logID uint, calories int) (*models.CalorieLog, error) {
	var log models.CalorieLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		return nil, err
	}
	log.Calories = calories
	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func DeleteCalorieLog(userID, logID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.CalorieLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ----- weight logs -----

func ListWeightLogs(userID uint) ([]models.WeightLog, error) {
	var logs []models.WeightLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

// UpsertWeightLog writes the weight for a calendar day as a single atomic
// insert-or-update against the (user_id, date) unique index. Two concurrent
// submissions for the same day cannot both insert; the later write wins and
// exactly one row remains.
func UpsertWeightLog(userID uint, weight float64, date time.Time) (*models.WeightLog, error) {
	day := dayStartLocal(date)

	log := models.WeightLog{
		UserID: userID,
		Date:   day,
		Weight: weight,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"weight":     weight,
			"updated_at": time.Now(),
		}),
	}).Create(&log).Error
	if err != nil {
		return nil, err
	}

	// Reload so the conflict-update path also returns the canonical row id.
	var out models.WeightLog
	if err := config.DB.
		Where("user_id = ? AND date = ?", userID, day).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func UpdateWeightLog(userID, logID uint, weight float64) (*models.WeightLog, error) {
	var log models.WeightLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		return nil, err
	}
	log.Weight = weight
	if err := config.DB.Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func DeleteWeightLog(userID, logID uint) error {
	res := config.DB.
		Where("id = ? AND user_id = ?", logID, userID).
		Delete(&models.WeightLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ----- activity logs -----

func ListActivityLogs(userID uint) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func CreateActivityLog(userID uint, activity string, date time.Time) (*models.ActivityLog, error) {
	if activity == "" {
		return nil, errors.New("activity must not be empty")
	}
	log := models.ActivityLog{
		UserID:   userID,
		Date:     date,
		Activity: activity,
	}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}
