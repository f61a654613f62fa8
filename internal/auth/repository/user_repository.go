package repository

import (
	goerrors "errors"

	"github.com/architect/eco-tracker/internal/auth/models"
	"github.com/architect/eco-tracker/internal/common/database"
	"github.com/architect/eco-tracker/internal/common/errors"
	"gorm.io/gorm"
)

// CreateUser persists a new account
func CreateUser(user *models.User) error {
	result := database.DB.Create(user)
	if result.Error != nil {
		return errors.Internal("failed to create user", result.Error.Error())
	}
	return nil
}

// GetUserByUsername fetches an account by its unique username
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User

	result := database.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		if goerrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}

	return &user, nil
}

// GetUserByID fetches an account by ID
func GetUserByID(id string) (*models.User, error) {
	var user models.User

	result := database.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if goerrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}

	return &user, nil
}
