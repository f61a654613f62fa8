package services

import (
	"time"

	"github.com/architect/eco-tracker/internal/actions/models"
	"github.com/architect/eco-tracker/internal/actions/repository"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/architect/eco-tracker/internal/common/validation"
	"github.com/google/uuid"
)

// CreateAction validates and persists a new action record for the owner.
// Negative quantities are clamped to zero and OccurredAt defaults to now.
func CreateAction(ownerID string, req models.CreateActionRequest) (*models.SustainableAction, error) {
	if ownerID == "" {
		return nil, errors.Unauthorized("missing principal")
	}

	if errs := validation.Validate(req); len(errs) > 0 {
		return nil, errors.Validation("invalid action fields", errs[0].Field+": "+errs[0].Message)
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	action := &models.SustainableAction{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		OccurredAt:  occurredAt,
		EnergySaved: validation.NonNegative(req.EnergySaved),
		WaterSaved:  validation.NonNegative(req.WaterSaved),
		Notes:       req.Notes,
	}

	if req.RecycledItems != nil {
		action.RecycledItems = models.RecycledItems{
			Plastic: validation.NonNegativeInt(req.RecycledItems.Plastic),
			Paper:   validation.NonNegativeInt(req.RecycledItems.Paper),
			Metal:   validation.NonNegativeInt(req.RecycledItems.Metal),
		}
	}

	if req.Transportation != nil {
		action.Transportation = models.Transportation{
			Biking:          req.Transportation.Biking,
			PublicTransport: req.Transportation.PublicTransport,
			Carpooling:      req.Transportation.Carpooling,
			WalkingDistance: validation.NonNegative(req.Transportation.WalkingDistance),
		}
	}

	if err := repository.CreateAction(action); err != nil {
		return nil, err
	}

	return action, nil
}

// ListActions returns all of an owner's records, most recent first
func ListActions(ownerID string) ([]models.SustainableAction, error) {
	return repository.GetOwnerActions(ownerID)
}

// ListActionsInRange returns the owner's records with start <= occurred_at <= end
func ListActionsInRange(ownerID string, start, end time.Time) ([]models.SustainableAction, error) {
	return repository.GetOwnerActionsInRange(ownerID, start, end)
}

// requireOwnership fetches a record and verifies it belongs to the requesting
// principal. Missing records and foreign records stay distinct outcomes:
// NotFound when no record exists, Forbidden when it exists under another owner.
func requireOwnership(id string, ownerID string) (*models.SustainableAction, error) {
	action, err := repository.GetActionByID(id)
	if err != nil {
		return nil, err
	}

	if action.OwnerID != ownerID {
		return nil, errors.Forbidden("not authorized to modify this action")
	}

	return action, nil
}

// UpdateAction applies a partial update to a record after the ownership
// check. Each present field in the patch replaces the stored field wholesale.
func UpdateAction(id string, ownerID string, patch models.UpdateActionRequest) (*models.SustainableAction, error) {
	if errs := validation.Validate(patch); len(errs) > 0 {
		return nil, errors.Validation("invalid action fields", errs[0].Field+": "+errs[0].Message)
	}

	action, err := requireOwnership(id, ownerID)
	if err != nil {
		return nil, err
	}

	if patch.OccurredAt != nil {
		action.OccurredAt = *patch.OccurredAt
	}
	if patch.EnergySaved != nil {
		action.EnergySaved = validation.NonNegative(*patch.EnergySaved)
	}
	if patch.WaterSaved != nil {
		action.WaterSaved = validation.NonNegative(*patch.WaterSaved)
	}
	if patch.RecycledItems != nil {
		action.RecycledItems = models.RecycledItems{
			Plastic: validation.NonNegativeInt(patch.RecycledItems.Plastic),
			Paper:   validation.NonNegativeInt(patch.RecycledItems.Paper),
			Metal:   validation.NonNegativeInt(patch.RecycledItems.Metal),
		}
	}
	if patch.Transportation != nil {
		action.Transportation = models.Transportation{
			Biking:          patch.Transportation.Biking,
			PublicTransport: patch.Transportation.PublicTransport,
			Carpooling:      patch.Transportation.Carpooling,
			WalkingDistance: validation.NonNegative(patch.Transportation.WalkingDistance),
		}
	}
	if patch.Notes != nil {
		action.Notes = *patch.Notes
	}

	if err := repository.SaveAction(action); err != nil {
		return nil, err
	}

	return action, nil
}

// DeleteAction removes a record after the ownership check
func DeleteAction(id string, ownerID string) error {
	if _, err := requireOwnership(id, ownerID); err != nil {
		return err
	}

	return repository.DeleteAction(id)
}
