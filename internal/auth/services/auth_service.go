package services

import (
	"github.com/architect/eco-tracker/internal/auth/models"
	"github.com/architect/eco-tracker/internal/auth/repository"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new account with a bcrypt-hashed password
func Register(req models.RegisterRequest) (*models.UserResponse, error) {
	// Unique username check before insert
	if _, err := repository.GetUserByUsername(req.Username); err == nil {
		return nil, errors.Conflict("username is already taken")
	} else if appErr, ok := err.(*errors.AppError); !ok || appErr.Code != errors.CodeNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err.Error())
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	if err := repository.CreateUser(user); err != nil {
		return nil, err
	}

	return &models.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login verifies credentials and issues an access token
func Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := repository.GetUserByUsername(req.Username)
	if err != nil {
		if appErr, ok := err.(*errors.AppError); ok && appErr.Code == errors.CodeNotFound {
			// Same response for unknown user and bad password
			return nil, errors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.Unauthorized("invalid credentials")
	}

	token, err := GenerateAccessToken(user.ID)
	if err != nil {
		return nil, errors.Internal("failed to issue token", err.Error())
	}

	return &models.AuthResponse{
		Token: token,
		User: models.UserResponse{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
