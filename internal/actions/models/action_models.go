package models

import (
	"time"
)

// RecycledItems holds per-material recycling counts for one log entry
type RecycledItems struct {
	Plastic int `json:"plastic"`
	Paper   int `json:"paper"`
	Metal   int `json:"metal"`
}

// Transportation holds the transportation choices for one log entry
type Transportation struct {
	Biking          bool    `json:"biking"`
	PublicTransport bool    `json:"publicTransport"`
	Carpooling      bool    `json:"carpooling"`
	WalkingDistance float64 `json:"walkingDistance"`
}

// SustainableAction is one logged instance of a user's sustainable behavior.
// OwnerID and ID are immutable after creation.
type SustainableAction struct {
	ID             string         `gorm:"primaryKey;size:36" json:"id"`
	OwnerID        string         `gorm:"not null;size:36;index:idx_actions_owner_occurred,priority:1" json:"ownerId"`
	OccurredAt     time.Time      `gorm:"not null;index:idx_actions_owner_occurred,priority:2,sort:desc" json:"occurredAt"`
	EnergySaved    float64        `json:"energySaved"`
	WaterSaved     float64        `json:"waterSaved"`
	RecycledItems  RecycledItems  `gorm:"embedded;embeddedPrefix:recycled_" json:"recycledItems"`
	Transportation Transportation `gorm:"embedded;embeddedPrefix:transport_" json:"transportation"`
	Notes          string         `gorm:"size:500" json:"notes"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// CreateActionRequest is the request to log a new sustainable action.
// Absent numeric fields default to zero; negative values are clamped to zero.
type CreateActionRequest struct {
	OccurredAt     *time.Time      `json:"occurredAt"`
	EnergySaved    float64         `json:"energySaved"`
	WaterSaved     float64         `json:"waterSaved"`
	RecycledItems  *RecycledItems  `json:"recycledItems"`
	Transportation *Transportation `json:"transportation"`
	Notes          string          `json:"notes" validate:"max=500"`
}

// UpdateActionRequest is a partial update. Each present top-level field
// replaces the stored field wholesale; nil fields are left untouched.
type UpdateActionRequest struct {
	OccurredAt     *time.Time      `json:"occurredAt"`
	EnergySaved    *float64        `json:"energySaved"`
	WaterSaved     *float64        `json:"waterSaved"`
	RecycledItems  *RecycledItems  `json:"recycledItems"`
	Transportation *Transportation `json:"transportation"`
	Notes          *string         `json:"notes" validate:"omitempty,max=500"`
}

// StatsSummary is the derived aggregate over a set of actions. It is computed
// on every query and never persisted.
//
// BikingDays, PublicTransportDays and CarpoolingDays count log entries with
// the flag set, not distinct calendar days: two biking entries on the same
// day count as 2.
type StatsSummary struct {
	TotalEnergySaved     float64 `json:"totalEnergySaved"`
	TotalWaterSaved      float64 `json:"totalWaterSaved"`
	TotalPlasticRecycled int     `json:"totalPlasticRecycled"`
	TotalPaperRecycled   int     `json:"totalPaperRecycled"`
	TotalMetalRecycled   int     `json:"totalMetalRecycled"`
	BikingDays           int     `json:"bikingDays"`
	PublicTransportDays  int     `json:"publicTransportDays"`
	CarpoolingDays       int     `json:"carpoolingDays"`
	TotalWalkingDistance float64 `json:"totalWalkingDistance"`
	TotalLogs            int     `json:"totalLogs"`
}

// Named stats periods. Anything else resolves to all time.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

// MaxNotesLength bounds the free-text notes field
const MaxNotesLength = 500
