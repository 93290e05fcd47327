package scoring

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// A week of 5h sleep against an 8h ideal plus 2h daily overtime should land
// in the red zone with both deficits named.
func TestComputeScore_SleepDeficitAndOvertimeGoRed(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(5)
		s.OvertimeHours = fptr(2)
	})

	result, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.BurnoutScore <= 70 {
		t.Fatalf("expected burnout above red cutoff, got %v", result.BurnoutScore)
	}
	if result.Zone != ZoneRed {
		t.Fatalf("expected red zone, got %q", result.Zone)
	}
	sleep, ok := findFactor(result.Factors, "sleep_deficit")
	if !ok || sleep.Impact != ImpactNegative {
		t.Fatalf("expected negative sleep_deficit factor, got %#v", sleep)
	}
	overtime, ok := findFactor(result.Factors, "overtime")
	if !ok || overtime.Impact != ImpactNegative {
		t.Fatalf("expected negative overtime factor, got %#v", overtime)
	}
}

// Identical metrics with health consent revoked: the sleep factor disappears,
// the overtime factor survives, and the score drops.
func TestComputeScore_HealthConsentRevoked(t *testing.T) {
	employeeID := uuid.New()
	build := func(consented bool) *ScoreResult {
		snap := baseSnapshot(employeeID)
		snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
			s.SleepHours = fptr(5)
			s.OvertimeHours = fptr(2)
		})
		if !consented {
			consent := types.FullConsent(employeeID)
			consent.UseHealthData = false
			snap.Consent = consent
		}
		result, err := ComputeScore(snap)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		return result
	}

	full := build(true)
	revoked := build(false)

	if _, ok := findFactor(revoked.Factors, "sleep_deficit"); ok {
		t.Fatalf("sleep factor present despite revoked health consent")
	}
	if _, ok := findFactor(revoked.Factors, "overtime"); !ok {
		t.Fatalf("overtime factor missing")
	}
	if revoked.BurnoutScore >= full.BurnoutScore {
		t.Fatalf("revoking consent did not lower burnout: %v vs %v", revoked.BurnoutScore, full.BurnoutScore)
	}
}

// The same raw score classifies red under an org default of 70 but not under
// an employee override of 85.
func TestComputeScore_OverrideChangesClassificationOnly(t *testing.T) {
	employeeID := uuid.New()
	build := func(withOverride bool) *ScoreResult {
		snap := baseSnapshot(employeeID)
		snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
			s.SleepHours = fptr(5)
			s.OvertimeHours = fptr(2)
		})
		if withOverride {
			start := testDate.AddDate(0, 0, -15)
			o := testSystemDefault()
			o.ID = uuid.New()
			o.EmployeeID = &employeeID
			o.BurnoutRedThreshold = 85
			o.StartsAt = &start
			snap.Overrides = []*types.ThresholdConfig{o}
		}
		result, err := ComputeScore(snap)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		return result
	}

	base := build(false)
	overridden := build(true)

	if base.BurnoutScore != overridden.BurnoutScore {
		t.Fatalf("override changed the raw score: %v vs %v", base.BurnoutScore, overridden.BurnoutScore)
	}
	if base.Zone != ZoneRed {
		t.Fatalf("expected red under default thresholds, got %q", base.Zone)
	}
	if overridden.Zone == ZoneRed {
		t.Fatalf("expected non-red under the 85 override")
	}
}

func TestComputeScore_Idempotent(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(6)
		s.OvertimeHours = fptr(1.5)
		s.MeetingHours = fptr(4)
		s.HeartRateVar = fptr(45)
	})
	snap.Checkins = []*types.Checkin{
		checkin(2, 2, 4, 2), checkin(2, 2, 4, 2), checkin(2, 2, 4, 2),
	}

	first, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical snapshots produced different results:\n%#v\n%#v", first, second)
	}
}

func TestComputeScore_ScoresStayBounded(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(0)
		s.HeartRateVar = fptr(10)
		s.RestingHeartRate = fptr(100)
		s.ExerciseMinutes = fptr(0)
		s.OvertimeHours = fptr(10)
		s.MeetingHours = fptr(10)
		s.FocusHours = fptr(0)
		s.TaskCompletionRate = fptr(0)
	})
	snap.Checkins = []*types.Checkin{
		checkin(1, 1, 5, 1), checkin(1, 1, 5, 1), checkin(1, 1, 5, 1),
	}

	result, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if result.BurnoutScore < 0 || result.BurnoutScore > 100 {
		t.Fatalf("burnout out of bounds: %v", result.BurnoutScore)
	}
	if result.ReadinessScore < 0 || result.ReadinessScore > 100 {
		t.Fatalf("readiness out of bounds: %v", result.ReadinessScore)
	}
	if result.Zone != ZoneRed {
		t.Fatalf("expected red zone for a fully deviant week, got %q", result.Zone)
	}
	if len(result.InteractionEffects) == 0 {
		t.Fatalf("expected interaction effects for compounding deviations")
	}
}

func TestComputeScore_InteractionPenaltyFeedsScore(t *testing.T) {
	employeeID := uuid.New()
	build := func(enabled bool) *ScoreResult {
		snap := baseSnapshot(employeeID)
		snap.SystemDefault.EnableInteractionEffects = enabled
		snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
			s.OvertimeHours = fptr(4)
			s.MeetingHours = fptr(6)
		})
		result, err := ComputeScore(snap)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		return result
	}

	with := build(true)
	without := build(false)
	if len(with.InteractionEffects) == 0 {
		t.Fatalf("expected workload_compound to fire")
	}
	if len(without.InteractionEffects) != 0 {
		t.Fatalf("effects detected while disabled")
	}
	if with.BurnoutScore <= without.BurnoutScore {
		t.Fatalf("interaction penalty did not feed the score: %v vs %v", with.BurnoutScore, without.BurnoutScore)
	}
}

func TestComputeScore_CalibrationPullsTowardFeltExperience(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(8)
	})
	snap.Checkins = []*types.Checkin{
		checkin(1, 1, 5, 1), checkin(1, 1, 5, 1), checkin(1, 1, 5, 1),
	}

	result, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !result.Calibration.Applied {
		t.Fatalf("expected calibration applied: %s", result.Calibration.Message)
	}
	if result.BurnoutScore != 60 {
		t.Fatalf("expected 50+10 calibrated burnout, got %v", result.BurnoutScore)
	}
}

func TestComputeScore_LifeEventSoftensSleepDeficit(t *testing.T) {
	employeeID := uuid.New()
	build := func(withEvent bool) *ScoreResult {
		snap := baseSnapshot(employeeID)
		snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
			s.SleepHours = fptr(5)
		})
		if withEvent {
			snap.LifeEvents = []*types.LifeEvent{
				{
					ID:              uuid.New(),
					EmployeeID:      employeeID,
					Label:           "New parent",
					EventType:       "new_parent",
					StartsAt:        testDate.AddDate(0, 0, -30),
					SleepAdjustment: -0.4,
				},
			}
		}
		result, err := ComputeScore(snap)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		return result
	}

	plain := build(false)
	softened := build(true)
	if softened.BurnoutScore >= plain.BurnoutScore {
		t.Fatalf("life event did not soften the deficit: %v vs %v", softened.BurnoutScore, plain.BurnoutScore)
	}
	if len(softened.ActiveLifeEvents) != 1 || softened.ActiveLifeEvents[0].Label != "New parent" {
		t.Fatalf("active life event missing from result")
	}
}

func TestComputeScore_ValidatesInput(t *testing.T) {
	if _, err := ComputeScore(Snapshot{Date: testDate, SystemDefault: testSystemDefault()}); err == nil {
		t.Fatalf("expected error for missing employee id")
	}
	if _, err := ComputeScore(Snapshot{EmployeeID: uuid.New(), Date: time.Time{}, SystemDefault: testSystemDefault()}); err == nil {
		t.Fatalf("expected error for missing date")
	}
}

func TestExplain_WrapsComputeScore(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(5)
		s.OvertimeHours = fptr(2)
	})

	result, exp, err := Explain(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if exp.Zone != result.Zone || exp.BurnoutScore != result.BurnoutScore {
		t.Fatalf("explanation diverged from result")
	}
	if len(exp.Recommendations.Personal) == 0 || len(exp.Recommendations.Leadership) == 0 {
		t.Fatalf("expected both recommendation sets")
	}
}

func TestComputeScore_BurnoutAndReadinessIndependent(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Samples = weekSamples(employeeID, func(s *types.MetricSample) {
		s.SleepHours = fptr(8)
		s.ExerciseMinutes = fptr(50)
		s.TaskCompletionRate = fptr(0.95)
		s.HeartRateVar = fptr(80)
		s.OvertimeHours = fptr(3)
	})

	result, err := ComputeScore(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Strong recovery signals and real overtime at the same time: both
	// accumulators move, neither mirrors the other.
	if result.BurnoutScore <= baselineScore {
		t.Fatalf("expected burnout above baseline, got %v", result.BurnoutScore)
	}
	if result.ReadinessScore <= baselineScore {
		t.Fatalf("expected readiness above baseline, got %v", result.ReadinessScore)
	}
	if math.Abs((100-result.BurnoutScore)-result.ReadinessScore) < 1e-9 {
		t.Fatalf("scores look like strict inverses")
	}
}
