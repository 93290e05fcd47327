package scoring

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

// Wednesday, so weekend adjustment stays out of the way unless a test wants it.
var testDate = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func testSystemDefault() *types.ThresholdConfig {
	return &types.ThresholdConfig{
		ID:                           uuid.New(),
		BurnoutRedThreshold:          70,
		ReadinessGreenThreshold:      65,
		InteractionHighThreshold:     8,
		InteractionCriticalThreshold: 12,
		ThresholdType:                types.ThresholdTypeAbsolute,
		EnableInteractionEffects:     true,
		EnableWeekendAdjustment:      true,
	}
}

// weekSamples builds one sample per day of the trailing window ending at
// testDate, with fill applied to each.
func weekSamples(employeeID uuid.UUID, fill func(*types.MetricSample)) []*types.MetricSample {
	var out []*types.MetricSample
	for i := DefaultWindowDays - 1; i >= 0; i-- {
		s := &types.MetricSample{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Date:       testDate.AddDate(0, 0, -i),
		}
		fill(s)
		out = append(out, s)
	}
	return out
}

func baseSnapshot(employeeID uuid.UUID) Snapshot {
	return Snapshot{
		EmployeeID:    employeeID,
		Date:          testDate,
		SystemDefault: testSystemDefault(),
	}
}

func findFactor(factors []Factor, name string) (Factor, bool) {
	for _, f := range factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}
