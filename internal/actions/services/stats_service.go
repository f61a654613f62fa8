package services

import (
	"time"

	"github.com/architect/eco-tracker/internal/actions/models"
	"github.com/architect/eco-tracker/internal/actions/repository"
)

// ResolveWindow maps a named period onto a concrete [start, end] window
// ending now. Unknown or empty periods resolve to all time. Boundaries use
// the server's local clock.
func ResolveWindow(period string, now time.Time) (time.Time, time.Time) {
	switch period {
	case models.PeriodWeek:
		return now.AddDate(0, 0, -7), now
	case models.PeriodMonth:
		return now.AddDate(0, -1, 0), now
	case models.PeriodYear:
		return now.AddDate(-1, 0, 0), now
	default:
		return time.Unix(0, 0), now
	}
}

// Summarize reduces a set of action records to aggregate totals in a single
// order-independent pass. An empty input yields the zero summary.
func Summarize(actions []models.SustainableAction) models.StatsSummary {
	var summary models.StatsSummary

	for _, action := range actions {
		summary.TotalEnergySaved += action.EnergySaved
		summary.TotalWaterSaved += action.WaterSaved

		summary.TotalPlasticRecycled += action.RecycledItems.Plastic
		summary.TotalPaperRecycled += action.RecycledItems.Paper
		summary.TotalMetalRecycled += action.RecycledItems.Metal

		// Counts entries with the flag set, not distinct calendar days
		if action.Transportation.Biking {
			summary.BikingDays++
		}
		if action.Transportation.PublicTransport {
			summary.PublicTransportDays++
		}
		if action.Transportation.Carpooling {
			summary.CarpoolingDays++
		}
		summary.TotalWalkingDistance += action.Transportation.WalkingDistance
	}

	summary.TotalLogs = len(actions)
	return summary
}

// GetStats resolves the requested window, fetches the owner's records inside
// it and reduces them to a summary.
func GetStats(ownerID string, period string) (*models.StatsSummary, error) {
	start, end := ResolveWindow(period, time.Now())

	actions, err := repository.GetOwnerActionsInRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}

	summary := Summarize(actions)
	return &summary, nil
}
