package scoring

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// DefaultWindowDays is the trailing window of metric and check-in history a
// score is computed over.
const DefaultWindowDays = 7

// Snapshot is everything one scoring run reads, materialized up front by the
// caller from a single consistent read. The engine performs no I/O and never
// mutates the snapshot, so a run is deterministic: identical snapshots yield
// identical results.
type Snapshot struct {
	EmployeeID     uuid.UUID
	OrganizationID *uuid.UUID
	Date           time.Time

	// Trailing-window history ending at Date.
	Samples  []*types.MetricSample
	Checkins []*types.Checkin

	// Employee-managed configuration, as of Date. Preferences and Consent may
	// be nil (defaults apply); LifeEvents holds only events active on Date.
	Preferences *types.PersonalPreferences
	LifeEvents  []*types.LifeEvent
	Consent     *types.ScoringConsent

	// Threshold layers, as of Date. SystemDefault is required; Overrides
	// holds the employee override rows covering Date.
	SystemDefault *types.ThresholdConfig
	OrgDefault    *types.ThresholdConfig
	Overrides     []*types.ThresholdConfig
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
