package handlers

import (
	"time"

	"github.com/architect/eco-tracker/internal/actions/models"
	"github.com/architect/eco-tracker/internal/actions/services"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/architect/eco-tracker/internal/common/middleware"
	"github.com/gin-gonic/gin"
)

// CreateAction logs a new sustainable action for the current user
// POST /api/v1/actions
func CreateAction(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	var req models.CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body"))
		return
	}

	action, err := services.CreateAction(ownerID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, action)
}

// GetUserActions lists all of the current user's actions, most recent first
// GET /api/v1/actions
func GetUserActions(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	actions, err := services.ListActions(ownerID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, actions)
}

// GetActionsByDateRange lists the current user's actions between two dates
// GET /api/v1/actions/date-range?startDate=...&endDate=...
func GetActionsByDateRange(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	startParam := c.Query("startDate")
	endParam := c.Query("endDate")
	if startParam == "" || endParam == "" {
		middleware.JSONErrorResponse(c, errors.BadRequest("startDate and endDate are required"))
		return
	}

	start, err := parseDate(startParam)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid startDate"))
		return
	}

	end, err := parseDate(endParam)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid endDate"))
		return
	}

	actions, err := services.ListActionsInRange(ownerID, start, end)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, actions)
}

// GetUserStats returns aggregate totals for the current user over a period
// GET /api/v1/actions/stats?period=week|month|year
func GetUserStats(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	stats, err := services.GetStats(ownerID, c.Query("period"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, stats)
}

// UpdateAction applies a partial update to one of the current user's actions
// PUT /api/v1/actions/:id
func UpdateAction(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	var patch models.UpdateActionRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body"))
		return
	}

	action, err := services.UpdateAction(c.Param("id"), ownerID, patch)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, action)
}

// DeleteAction removes one of the current user's actions
// DELETE /api/v1/actions/:id
func DeleteAction(c *gin.Context) {
	ownerID, ok := middleware.CurrentUserID(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("missing principal"))
		return
	}

	if err := services.DeleteAction(c.Param("id"), ownerID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "action deleted successfully"})
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
