package scoring

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

func checkin(feeling, energy, stress, motivation int) *types.Checkin {
	return &types.Checkin{
		ID:             uuid.New(),
		EmployeeID:     uuid.New(),
		OverallFeeling: feeling,
		EnergyLevel:    energy,
		StressLevel:    stress,
		Motivation:     motivation,
	}
}

func TestCalibrate_CorrectionBoundedAtTen(t *testing.T) {
	// Felt strain 100 vs algorithmic 50: raw correction would be 25.
	checkins := []*types.Checkin{
		checkin(1, 1, 5, 1),
		checkin(1, 1, 5, 1),
		checkin(1, 1, 5, 1),
	}
	adjusted, info := calibrate(50, checkins, true)
	if !info.Applied {
		t.Fatalf("expected calibration applied: %s", info.Message)
	}
	if adjusted != 60 {
		t.Fatalf("expected 50+10=60, got %v", adjusted)
	}
	if math.Abs(adjusted-50) > calibrationMaxCorrection {
		t.Fatalf("correction exceeded bound: %v", adjusted-50)
	}
	if info.Discrepancy != 50 {
		t.Fatalf("expected discrepancy 50, got %v", info.Discrepancy)
	}
}

func TestCalibrate_TooFewCheckins(t *testing.T) {
	checkins := []*types.Checkin{
		checkin(1, 1, 5, 1),
		checkin(1, 1, 5, 1),
	}
	adjusted, info := calibrate(50, checkins, true)
	if info.Applied {
		t.Fatalf("calibration applied with too few check-ins")
	}
	if adjusted != 50 {
		t.Fatalf("score changed without calibration: %v", adjusted)
	}
}

func TestCalibrate_SmallDiscrepancyIgnored(t *testing.T) {
	// Strain ((5-3)+(3-1)+(5-3)+(5-3))/16 = 0.5 -> 50, matching the score.
	checkins := []*types.Checkin{
		checkin(3, 3, 3, 3),
		checkin(3, 3, 3, 3),
		checkin(3, 3, 3, 3),
	}
	adjusted, info := calibrate(50, checkins, true)
	if info.Applied {
		t.Fatalf("calibration applied on agreement")
	}
	if adjusted != 50 {
		t.Fatalf("score changed: %v", adjusted)
	}
}

func TestCalibrate_CorrectsDownward(t *testing.T) {
	// Feeling great while the algorithm reads 80: pull down.
	checkins := []*types.Checkin{
		checkin(5, 5, 1, 5),
		checkin(5, 5, 1, 5),
		checkin(5, 5, 1, 5),
	}
	adjusted, info := calibrate(80, checkins, true)
	if !info.Applied {
		t.Fatalf("expected calibration applied")
	}
	if adjusted != 70 {
		t.Fatalf("expected 80-10=70, got %v", adjusted)
	}
	if info.Discrepancy >= 0 {
		t.Fatalf("expected negative discrepancy, got %v", info.Discrepancy)
	}
}

func TestCalibrate_SkippedWithoutConsent(t *testing.T) {
	checkins := []*types.Checkin{
		checkin(1, 1, 5, 1),
		checkin(1, 1, 5, 1),
		checkin(1, 1, 5, 1),
	}
	adjusted, info := calibrate(50, checkins, false)
	if info.Applied {
		t.Fatalf("calibration fabricated a correction from non-consented data")
	}
	if adjusted != 50 {
		t.Fatalf("score changed: %v", adjusted)
	}
	if info.Message == "" {
		t.Fatalf("expected explanatory message")
	}
}

func TestSelfReportedStrain_Extremes(t *testing.T) {
	worst := selfReportedStrain([]*types.Checkin{checkin(1, 1, 5, 1)})
	if worst != 100 {
		t.Fatalf("expected worst strain 100, got %v", worst)
	}
	best := selfReportedStrain([]*types.Checkin{checkin(5, 5, 1, 5)})
	if best != 0 {
		t.Fatalf("expected best strain 0, got %v", best)
	}
}
