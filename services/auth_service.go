package services

import (
	"errors"

	"github.com/mikespe/calcalc2.0/config"
	"github.com/mikespe/calcalc2.0/models"
	"github.com/mikespe/calcalc2.0/utils"

	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// a caller probing the login endpoint cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterUser creates an account with a bcrypt-hashed password.
func RegisterUser(name, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies credentials and mints a session token. Both
// failure paths return the same ErrInvalidCredentials.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
