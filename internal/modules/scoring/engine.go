package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
)

// ComputeScore runs the full pipeline over one snapshot: threshold
// resolution, consent filtering, personalization, factor computation,
// interaction detection, calibration and zone classification. It is a pure
// function of the snapshot; callers may invoke it concurrently for any number
// of employees.
func ComputeScore(snap Snapshot) (*ScoreResult, error) {
	if snap.EmployeeID == uuid.Nil {
		return nil, fmt.Errorf("compute score: missing employee id")
	}
	if snap.Date.IsZero() {
		return nil, fmt.Errorf("compute score: missing evaluation date")
	}

	thresholds, err := resolveThresholds(snap)
	if err != nil {
		return nil, err
	}

	samples, checkins := applyConsent(snap.Samples, snap.Checkins, snap.Consent)
	checkinsConsented := snap.Consent == nil || snap.Consent.UseCheckinData

	pc := buildPersonalContext(snap.Preferences, snap.LifeEvents)

	totals := computeFactors(samples, pc, snap.Date, thresholds.EnableWeekendAdjustment)

	effects, penalty := detectInteractions(totals.factors, thresholds, InteractionRules())

	burnout := clamp(baselineScore+totals.burnoutPoints+penalty, 0, 100)
	readiness := clamp(baselineScore+totals.readinessPoints, 0, 100)

	burnout, calibration := calibrate(burnout, checkins, checkinsConsented)

	zone := classifyZone(burnout, readiness, thresholds)

	factors := totals.factors
	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Weight) > math.Abs(factors[j].Weight)
	})

	return &ScoreResult{
		EmployeeID:         snap.EmployeeID,
		Date:               snap.Date,
		BurnoutScore:       burnout,
		ReadinessScore:     readiness,
		Zone:               zone,
		Factors:            factors,
		InteractionEffects: effects,
		Calibration:        calibration,
		ActiveLifeEvents:   pc.ActiveEvents,
		Thresholds:         thresholds,
	}, nil
}

// Explain computes the score and assembles the full explanation, with both
// recommendation sets. Role-based redaction happens at the caller's boundary.
func Explain(snap Snapshot) (*ScoreResult, *Explanation, error) {
	result, err := ComputeScore(snap)
	if err != nil {
		return nil, nil, err
	}
	pc := buildPersonalContext(snap.Preferences, snap.LifeEvents)
	return result, buildExplanation(result, pc), nil
}
