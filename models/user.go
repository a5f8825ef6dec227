package models

import (
	"gorm.io/gorm"
)

// User is the account record. Password holds the bcrypt hash and is never
// serialized; profile fields feed the calorie-target calculator.
type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null" json:"-"`
	Name     string

	Height        float64 // cm
	Weight        float64 // kg
	Age           int
	Gender        string
	ActivityLevel string // multiplier as string, e.g. "1.55"
	Goal          string // "lose", "maintain" or "gain"
}
