package services

import (
	"testing"
	"time"

	"github.com/architect/eco-tracker/internal/actions/models"
	"github.com/architect/eco-tracker/internal/common/database"
	"github.com/architect/eco-tracker/internal/common/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global connection for a fresh in-memory SQLite database
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.SustainableAction{}))
	database.DB = db
}

func appCode(t *testing.T, err error) string {
	t.Helper()
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok, "expected *errors.AppError, got %T", err)
	return appErr.Code
}

func TestCreateAction_Defaults(t *testing.T) {
	setupTestDB(t)

	before := time.Now()
	action, err := CreateAction("u1", models.CreateActionRequest{})

	require.NoError(t, err)
	assert.NotEmpty(t, action.ID)
	assert.Equal(t, "u1", action.OwnerID)
	assert.False(t, action.OccurredAt.Before(before))
	assert.Zero(t, action.EnergySaved)
	assert.Zero(t, action.WaterSaved)
	assert.Zero(t, action.RecycledItems.Plastic)
	assert.Zero(t, action.Transportation.WalkingDistance)
	assert.False(t, action.Transportation.Biking)
}

func TestCreateAction_ClampsNegativeNumerics(t *testing.T) {
	setupTestDB(t)

	action, err := CreateAction("u1", models.CreateActionRequest{
		EnergySaved: -5,
		WaterSaved:  -1,
		RecycledItems: &models.RecycledItems{
			Plastic: -2,
			Paper:   3,
		},
		Transportation: &models.Transportation{
			Biking:          true,
			WalkingDistance: -4,
		},
	})

	require.NoError(t, err)
	assert.Zero(t, action.EnergySaved)
	assert.Zero(t, action.WaterSaved)
	assert.Zero(t, action.RecycledItems.Plastic)
	assert.Equal(t, 3, action.RecycledItems.Paper)
	assert.Zero(t, action.Transportation.WalkingDistance)
	assert.True(t, action.Transportation.Biking)
}

func TestCreateAction_NotesTooLong(t *testing.T) {
	setupTestDB(t)

	notes := make([]byte, models.MaxNotesLength+1)
	for i := range notes {
		notes[i] = 'a'
	}

	action, err := CreateAction("u1", models.CreateActionRequest{Notes: string(notes)})

	assert.Nil(t, action)
	require.Error(t, err)
	assert.Equal(t, errors.CodeValidation, appCode(t, err))
}

func TestCreateThenList_RoundTrip(t *testing.T) {
	setupTestDB(t)

	occurred := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	created, err := CreateAction("u1", models.CreateActionRequest{
		OccurredAt:  &occurred,
		EnergySaved: 5,
		RecycledItems: &models.RecycledItems{
			Plastic: 2,
		},
		Transportation: &models.Transportation{
			Biking: true,
		},
		Notes: "biked to work",
	})
	require.NoError(t, err)

	actions, err := ListActions("u1")
	require.NoError(t, err)
	require.Len(t, actions, 1)

	got := actions[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 5.0, got.EnergySaved)
	assert.Equal(t, 2, got.RecycledItems.Plastic)
	assert.True(t, got.Transportation.Biking)
	assert.Equal(t, "biked to work", got.Notes)
	assert.True(t, occurred.Equal(got.OccurredAt))
}

func TestListActions_OrderedMostRecentFirst(t *testing.T) {
	setupTestDB(t)

	for _, day := range []int{1, 15, 8} {
		occurred := time.Date(2026, 4, day, 0, 0, 0, 0, time.UTC)
		_, err := CreateAction("u1", models.CreateActionRequest{OccurredAt: &occurred})
		require.NoError(t, err)
	}

	actions, err := ListActions("u1")
	require.NoError(t, err)
	require.Len(t, actions, 3)
	assert.Equal(t, 15, actions[0].OccurredAt.Day())
	assert.Equal(t, 8, actions[1].OccurredAt.Day())
	assert.Equal(t, 1, actions[2].OccurredAt.Day())
}

func TestListActions_ScopedToOwner(t *testing.T) {
	setupTestDB(t)

	_, err := CreateAction("u1", models.CreateActionRequest{EnergySaved: 1})
	require.NoError(t, err)
	_, err = CreateAction("u2", models.CreateActionRequest{EnergySaved: 2})
	require.NoError(t, err)

	actions, err := ListActions("u1")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "u1", actions[0].OwnerID)
}

func TestListActionsInRange_InclusiveBounds(t *testing.T) {
	setupTestDB(t)

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	for _, occurred := range []time.Time{
		start.AddDate(0, 0, -1), // before window
		start,                   // on the start boundary
		start.AddDate(0, 0, 10), // inside
		end,                     // on the end boundary
		end.AddDate(0, 0, 1),    // after window
	} {
		ts := occurred
		_, err := CreateAction("u1", models.CreateActionRequest{OccurredAt: &ts})
		require.NoError(t, err)
	}

	actions, err := ListActionsInRange("u1", start, end)
	require.NoError(t, err)
	assert.Len(t, actions, 3)
}

func TestUpdateAction_NotFound(t *testing.T) {
	setupTestDB(t)

	action, err := UpdateAction("missing-id", "u1", models.UpdateActionRequest{})

	assert.Nil(t, action)
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, appCode(t, err))
}

func TestUpdateAction_WrongOwnerForbiddenAndUnchanged(t *testing.T) {
	setupTestDB(t)

	created, err := CreateAction("u1", models.CreateActionRequest{EnergySaved: 5})
	require.NoError(t, err)

	newEnergy := 99.0
	updated, err := UpdateAction(created.ID, "u2", models.UpdateActionRequest{EnergySaved: &newEnergy})

	assert.Nil(t, updated)
	require.Error(t, err)
	assert.Equal(t, errors.CodeForbidden, appCode(t, err))

	// Record is untouched
	actions, err := ListActions("u1")
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, 5.0, actions[0].EnergySaved)
}

func TestUpdateAction_MergesPresentFieldsWholesale(t *testing.T) {
	setupTestDB(t)

	created, err := CreateAction("u1", models.CreateActionRequest{
		EnergySaved: 5,
		WaterSaved:  10,
		RecycledItems: &models.RecycledItems{
			Plastic: 2,
			Paper:   4,
		},
		Notes: "original",
	})
	require.NoError(t, err)

	newEnergy := 7.5
	updated, err := UpdateAction(created.ID, "u1", models.UpdateActionRequest{
		EnergySaved: &newEnergy,
		// Top-level group replaces wholesale: paper count is not retained
		RecycledItems: &models.RecycledItems{Metal: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.EnergySaved)
	assert.Equal(t, 10.0, updated.WaterSaved) // untouched field survives
	assert.Equal(t, 1, updated.RecycledItems.Metal)
	assert.Zero(t, updated.RecycledItems.Plastic)
	assert.Zero(t, updated.RecycledItems.Paper)
	assert.Equal(t, "original", updated.Notes)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "u1", updated.OwnerID)
}

func TestUpdateAction_ClampsNegativePatch(t *testing.T) {
	setupTestDB(t)

	created, err := CreateAction("u1", models.CreateActionRequest{EnergySaved: 5})
	require.NoError(t, err)

	negative := -3.0
	updated, err := UpdateAction(created.ID, "u1", models.UpdateActionRequest{EnergySaved: &negative})

	require.NoError(t, err)
	assert.Zero(t, updated.EnergySaved)
}

func TestDeleteAction_Flow(t *testing.T) {
	setupTestDB(t)

	created, err := CreateAction("u1", models.CreateActionRequest{})
	require.NoError(t, err)

	// Wrong owner is rejected without deleting
	err = DeleteAction(created.ID, "u2")
	require.Error(t, err)
	assert.Equal(t, errors.CodeForbidden, appCode(t, err))

	// Owner can delete
	require.NoError(t, DeleteAction(created.ID, "u1"))

	actions, err := ListActions("u1")
	require.NoError(t, err)
	assert.Empty(t, actions)

	// Repeating the delete yields NotFound, not a crash
	err = DeleteAction(created.ID, "u1")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNotFound, appCode(t, err))
}
