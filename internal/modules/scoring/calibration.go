package scoring

import (
	"fmt"
	"math"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

const (
	// Minimum algorithmic-vs-felt gap before a correction is considered.
	calibrationDiscrepancyMin = 15.0
	// Hard cap on any correction.
	calibrationMaxCorrection = 10.0
	// Fewer check-ins than this in the window and we refuse to calibrate;
	// one noisy entry must not steer the score.
	calibrationMinCheckins = 3
	// Fraction of the discrepancy moved toward the felt signal.
	calibrationGain = 0.5
)

// calibrate compares the algorithmic burnout score against the self-reported
// strain trend and nudges the score toward felt experience, bounded to
// +-10 points. checkinsConsented=false means the consent filter removed the
// check-in category; calibration then never fabricates a correction.
func calibrate(burnoutScore float64, checkins []*types.Checkin, checkinsConsented bool) (float64, CalibrationInfo) {
	if !checkinsConsented {
		return burnoutScore, CalibrationInfo{
			Applied: false,
			Message: "Check-in data is excluded from scoring by consent settings; no calibration applied.",
		}
	}
	if len(checkins) < calibrationMinCheckins {
		return burnoutScore, CalibrationInfo{
			Applied: false,
			Message: fmt.Sprintf("Not enough recent check-ins to calibrate (%d of %d required).", len(checkins), calibrationMinCheckins),
		}
	}

	felt := selfReportedStrain(checkins)
	discrepancy := felt - burnoutScore
	if math.Abs(discrepancy) < calibrationDiscrepancyMin {
		return burnoutScore, CalibrationInfo{
			Applied:     false,
			Message:     "Algorithmic score and self-reported feeling agree; no calibration needed.",
			Discrepancy: discrepancy,
		}
	}

	correction := clamp(discrepancy*calibrationGain, -calibrationMaxCorrection, calibrationMaxCorrection)
	adjusted := clamp(burnoutScore+correction, 0, 100)
	direction := "up"
	if correction < 0 {
		direction = "down"
	}
	return adjusted, CalibrationInfo{
		Applied:     true,
		Message:     fmt.Sprintf("Score adjusted %s by %.1f points toward self-reported experience.", direction, math.Abs(correction)),
		Discrepancy: discrepancy,
	}
}

// selfReportedStrain rescales the 1-5 check-in ordinals onto the 0-100
// burnout axis: low feeling/energy/motivation and high stress all read as
// strain, equally weighted.
func selfReportedStrain(checkins []*types.Checkin) float64 {
	sum := 0.0
	n := 0
	for _, c := range checkins {
		if c == nil {
			continue
		}
		strain := float64((5-clampOrdinal(c.OverallFeeling))+(clampOrdinal(c.StressLevel)-1)+(5-clampOrdinal(c.EnergyLevel))+(5-clampOrdinal(c.Motivation))) / 16.0
		sum += strain
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n) * 100
}

func clampOrdinal(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
