package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

func TestComputeFactors_SleepDeficit(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(5)
	})
	pc := buildPersonalContext(nil, nil)

	totals := computeFactors(samples, pc, testDate, true)
	f, ok := findFactor(totals.factors, "sleep_deficit")
	if !ok {
		t.Fatalf("expected sleep_deficit factor")
	}
	if f.Impact != ImpactNegative {
		t.Fatalf("expected negative impact, got %q", f.Impact)
	}
	// (8-5)/8 * 0.30 * 100 = 11.25 points
	if math.Abs(totals.burnoutPoints-11.25) > 1e-9 {
		t.Fatalf("expected 11.25 burnout points, got %v", totals.burnoutPoints)
	}
	if math.Abs(f.Weight+11.25) > 1e-9 {
		t.Fatalf("expected factor weight -11.25, got %v", f.Weight)
	}
}

func TestComputeFactors_MissingMetricOmitted(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.OvertimeHours = fptr(2)
	})
	pc := buildPersonalContext(nil, nil)

	totals := computeFactors(samples, pc, testDate, true)
	if _, ok := findFactor(totals.factors, "sleep_deficit"); ok {
		t.Fatalf("sleep factor fabricated from absent data")
	}
	if _, ok := findFactor(totals.factors, "sleep_on_target"); ok {
		t.Fatalf("absent sleep treated as on-target")
	}
	if _, ok := findFactor(totals.factors, "overtime"); !ok {
		t.Fatalf("expected overtime factor from present data")
	}
}

func TestComputeFactors_WeekendDownWeightsWorkMetrics(t *testing.T) {
	employeeID := uuid.New()
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.OvertimeHours = fptr(2)
	})
	pc := buildPersonalContext(nil, nil)

	weekday := computeFactors(samples, pc, testDate, true)
	weekend := computeFactors(samples, pc, saturday, true)
	weekendOff := computeFactors(samples, pc, saturday, false)

	if math.Abs(weekend.burnoutPoints-weekday.burnoutPoints*weekendWorkDiscount) > 1e-9 {
		t.Fatalf("expected weekend points %v, got %v", weekday.burnoutPoints*weekendWorkDiscount, weekend.burnoutPoints)
	}
	if math.Abs(weekendOff.burnoutPoints-weekday.burnoutPoints) > 1e-9 {
		t.Fatalf("weekend adjustment applied while disabled")
	}
}

func TestComputeFactors_WeekendLeavesHealthMetricsAlone(t *testing.T) {
	employeeID := uuid.New()
	saturday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(5)
	})
	pc := buildPersonalContext(nil, nil)

	weekday := computeFactors(samples, pc, testDate, true)
	weekend := computeFactors(samples, pc, saturday, true)
	if weekday.burnoutPoints != weekend.burnoutPoints {
		t.Fatalf("weekend adjustment leaked into health metrics")
	}
}

func TestComputeFactors_OvertimeDerivedFromHoursWorked(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.HoursWorked = fptr(10)
	})
	pc := buildPersonalContext(nil, nil)

	totals := computeFactors(samples, pc, testDate, true)
	f, ok := findFactor(totals.factors, "overtime")
	if !ok {
		t.Fatalf("expected overtime derived from hours worked")
	}
	// (10-8)/4 * 0.20 * 100 = 10 points
	if math.Abs(f.Weight+10) > 1e-9 {
		t.Fatalf("expected derived overtime weight -10, got %v", f.Weight)
	}
}

func TestComputeFactors_IntrovertFeelsMeetingsHarder(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.MeetingHours = fptr(4)
	})
	introvert := buildPersonalContext(&types.PersonalPreferences{SocialEnergyType: types.SocialEnergyIntrovert}, nil)
	ambivert := buildPersonalContext(nil, nil)

	in := computeFactors(samples, introvert, testDate, true)
	am := computeFactors(samples, ambivert, testDate, true)
	if in.burnoutPoints <= am.burnoutPoints {
		t.Fatalf("expected introvert meeting load %v > ambivert %v", in.burnoutPoints, am.burnoutPoints)
	}
}

func TestComputeFactors_StepsFallbackWhenExerciseAbsent(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.Steps = iptr(2000)
	})
	pc := buildPersonalContext(nil, nil)

	totals := computeFactors(samples, pc, testDate, true)
	if _, ok := findFactor(totals.factors, "low_daily_movement"); !ok {
		t.Fatalf("expected steps fallback factor")
	}
}

func TestComputeFactors_SleepOnTargetFeedsReadiness(t *testing.T) {
	employeeID := uuid.New()
	samples := weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(8)
	})
	pc := buildPersonalContext(nil, nil)

	totals := computeFactors(samples, pc, testDate, true)
	f, ok := findFactor(totals.factors, "sleep_on_target")
	if !ok {
		t.Fatalf("expected sleep_on_target factor")
	}
	if f.Impact != ImpactPositive {
		t.Fatalf("expected positive impact, got %q", f.Impact)
	}
	if totals.readinessPoints <= 0 {
		t.Fatalf("expected positive readiness points, got %v", totals.readinessPoints)
	}
	if totals.burnoutPoints != 0 {
		t.Fatalf("expected no burnout points, got %v", totals.burnoutPoints)
	}
}

func TestComputeFactors_EmptyWindowProducesNothing(t *testing.T) {
	pc := buildPersonalContext(nil, nil)
	totals := computeFactors(nil, pc, testDate, true)
	if len(totals.factors) != 0 || totals.burnoutPoints != 0 || totals.readinessPoints != 0 {
		t.Fatalf("expected empty totals, got %#v", totals)
	}
}
