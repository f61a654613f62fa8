package handlers

import (
	"github.com/architect/eco-tracker/internal/auth/models"
	"github.com/architect/eco-tracker/internal/auth/services"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/architect/eco-tracker/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// Register creates a new account
// POST /api/v1/auth/register
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("username and password are required"))
		return
	}

	user, err := services.Register(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"user":    user,
	})
}

// Login exchanges credentials for a bearer token
// POST /api/v1/auth/login
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("username and password are required"))
		return
	}

	resp, err := services.Login(req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}
