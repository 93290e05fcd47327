package scoring

import (
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// applyConsent strips non-consented data categories out of the snapshot's
// samples and check-ins. Stripped fields become nil (absent), not zero: a
// consented zero is a real signal, a non-consented value is unknown and must
// not bias the score. The input rows are never mutated.
func applyConsent(samples []*types.MetricSample, checkins []*types.Checkin, consent *types.ScoringConsent) ([]*types.MetricSample, []*types.Checkin) {
	useHealth := true
	useWork := true
	useCheckins := true
	if consent != nil {
		useHealth = consent.UseHealthData
		useWork = consent.UseWorkData
		useCheckins = consent.UseCheckinData
	}

	outSamples := make([]*types.MetricSample, 0, len(samples))
	for _, s := range samples {
		if s == nil {
			continue
		}
		if useHealth && useWork {
			outSamples = append(outSamples, s)
			continue
		}
		filtered := *s
		if !useHealth {
			filtered.RestingHeartRate = nil
			filtered.AvgHeartRate = nil
			filtered.HeartRateVar = nil
			filtered.SleepHours = nil
			filtered.DeepSleepHours = nil
			filtered.RemSleepHours = nil
			filtered.Steps = nil
			filtered.ExerciseMinutes = nil
			filtered.HealthSource = nil
		}
		if !useWork {
			filtered.HoursWorked = nil
			filtered.OvertimeHours = nil
			filtered.MeetingCount = nil
			filtered.MeetingHours = nil
			filtered.FocusHours = nil
			filtered.TaskCompletionRate = nil
			filtered.EmailsSent = nil
			filtered.WorkSource = nil
		}
		outSamples = append(outSamples, &filtered)
	}

	if !useCheckins {
		return outSamples, nil
	}
	outCheckins := make([]*types.Checkin, 0, len(checkins))
	for _, c := range checkins {
		if c == nil {
			continue
		}
		outCheckins = append(outCheckins, c)
	}
	return outSamples, outCheckins
}
