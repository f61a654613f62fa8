package repository

import (
	goerrors "errors"
	"time"

	"github.com/architect/eco-tracker/internal/actions/models"
	"github.com/architect/eco-tracker/internal/common/database"
	"github.com/architect/eco-tracker/internal/common/errors"
	"gorm.io/gorm"
)

// CreateAction persists a new action record
func CreateAction(action *models.SustainableAction) error {
	result := database.DB.Create(action)
	if result.Error != nil {
		return errors.Internal("failed to create action", result.Error.Error())
	}
	return nil
}

// GetActionByID fetches a single action record regardless of owner
func GetActionByID(id string) (*models.SustainableAction, error) {
	var action models.SustainableAction

	result := database.DB.Where("id = ?", id).First(&action)
	if result.Error != nil {
		if goerrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("action")
		}
		return nil, errors.Internal("failed to fetch action", result.Error.Error())
	}

	return &action, nil
}

// GetOwnerActions retrieves all actions for an owner, most recent first
func GetOwnerActions(ownerID string) ([]models.SustainableAction, error) {
	var actions []models.SustainableAction

	result := database.DB.
		Where("owner_id = ?", ownerID).
		Order("occurred_at DESC").
		Find(&actions)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch actions", result.Error.Error())
	}

	return actions, nil
}

// GetOwnerActionsInRange retrieves an owner's actions with
// start <= occurred_at <= end, most recent first
func GetOwnerActionsInRange(ownerID string, start, end time.Time) ([]models.SustainableAction, error) {
	var actions []models.SustainableAction

	result := database.DB.
		Where("owner_id = ? AND occurred_at >= ? AND occurred_at <= ?", ownerID, start, end).
		Order("occurred_at DESC").
		Find(&actions)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch actions", result.Error.Error())
	}

	return actions, nil
}

// SaveAction writes the full record back
func SaveAction(action *models.SustainableAction) error {
	result := database.DB.Save(action)
	if result.Error != nil {
		return errors.Internal("failed to update action", result.Error.Error())
	}
	return nil
}

// DeleteAction removes a record by ID
func DeleteAction(id string) error {
	result := database.DB.Delete(&models.SustainableAction{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("failed to delete action", result.Error.Error())
	}
	return nil
}
