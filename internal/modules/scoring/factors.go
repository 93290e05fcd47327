package scoring

import (
	"fmt"
	"time"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

const (
	baselineScore = 50.0
	// Points per unit of weighted deviation. With a full weight budget of 1.0
	// a fully-deviant week saturates the 0/100 bound.
	scoreScale = 100.0

	// Full-scale normalizers for metrics whose ideal is zero or fixed.
	overtimeFullScaleHours = 4.0
	hrvBaselineMs          = 60.0
	restingHRBaselineBPM   = 60.0
	restingHRFullScaleBPM  = 20.0
	idealDailySteps        = 8000.0

	// Deviations inside this band count as on-target.
	neutralBand = 0.05

	// Work-metric contributions are halved on Sat/Sun when the weekend
	// adjustment flag is on, so intentional rest is not penalized.
	weekendWorkDiscount = 0.5

	// Factors contributing less than this many points are left off the list.
	minFactorPoints = 0.25
)

// Meeting load is felt differently by social-energy type.
const (
	meetingLoadIntrovert = 1.25
	meetingLoadExtrovert = 0.85
)

type factorTotals struct {
	factors         []Factor
	burnoutPoints   float64
	readinessPoints float64
}

// computeFactors turns the consent-filtered trailing window into named,
// weighted factors and the two running accumulators, in score points. A
// metric with no data anywhere in the window contributes nothing and emits no
// factor; absence is not evidence.
func computeFactors(samples []*types.MetricSample, pc personalContext, date time.Time, weekendAdjust bool) factorTotals {
	t := factorTotals{}
	workFactor := 1.0
	if weekendAdjust && isWeekend(date) {
		workFactor = weekendWorkDiscount
	}

	t.sleep(samples, pc)
	t.exercise(samples, pc)
	t.heart(samples, pc)
	t.overtime(samples, pc, workFactor)
	t.meetings(samples, pc, workFactor)
	t.focus(samples, pc, workFactor)
	t.taskCompletion(samples, pc, workFactor)

	return t
}

func (t *factorTotals) addBurnout(points float64, f Factor) {
	t.burnoutPoints += points
	f.Weight = -points
	f.Impact = ImpactNegative
	if points >= minFactorPoints {
		t.factors = append(t.factors, f)
	}
}

func (t *factorTotals) addReadiness(points float64, f Factor) {
	t.readinessPoints += points
	f.Weight = points
	f.Impact = ImpactPositive
	if points < 0 {
		f.Impact = ImpactNegative
	}
	if points >= minFactorPoints || points <= -minFactorPoints {
		t.factors = append(t.factors, f)
	}
}

func (t *factorTotals) sleep(samples []*types.MetricSample, pc personalContext) {
	actual, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.SleepHours })
	if n == 0 {
		return
	}
	dev := clamp((pc.IdealSleepHours-actual)/pc.IdealSleepHours, -1, 1)
	value := fmt.Sprintf("%.1fh avg sleep (ideal %.1fh)", actual, pc.IdealSleepHours)
	switch {
	case dev > neutralBand:
		t.addBurnout(pc.WeightSleep*dev*scoreScale, Factor{
			Name:        "sleep_deficit",
			Value:       value,
			Description: "Average sleep over the past week fell short of the personal ideal.",
			Category:    CategoryHealth,
		})
	case dev < -neutralBand:
		t.addReadiness(pc.WeightSleep*clamp(-dev, 0, 0.25)*scoreScale, Factor{
			Name:        "sleep_surplus",
			Value:       value,
			Description: "Sleep ran above the personal ideal, supporting recovery.",
			Category:    CategoryHealth,
		})
	default:
		t.addReadiness(pc.WeightSleep*0.5*scoreScale, Factor{
			Name:        "sleep_on_target",
			Value:       value,
			Description: "Sleep tracked the personal ideal.",
			Category:    CategoryHealth,
		})
	}
}

func (t *factorTotals) exercise(samples []*types.MetricSample, pc personalContext) {
	actual, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.ExerciseMinutes })
	if n > 0 {
		dev := clamp((pc.IdealExerciseMinutes-actual)/pc.IdealExerciseMinutes, -1, 1)
		value := fmt.Sprintf("%.0fmin avg exercise (ideal %.0fmin)", actual, pc.IdealExerciseMinutes)
		if dev > neutralBand {
			t.addReadiness(-pc.WeightExercise*dev*0.5*scoreScale, Factor{
				Name:        "low_exercise",
				Value:       value,
				Description: "Exercise fell below the personal target this week.",
				Category:    CategoryHealth,
			})
		} else {
			t.addReadiness(pc.WeightExercise*0.5*scoreScale, Factor{
				Name:        "exercise_consistent",
				Value:       value,
				Description: "Exercise met the personal target.",
				Category:    CategoryHealth,
			})
		}
		return
	}

	// No exercise minutes anywhere in the window: fall back to step counts
	// before concluding nothing about movement.
	steps, n := meanIntAsFloat(samples, func(s *types.MetricSample) *int { return s.Steps })
	if n == 0 {
		return
	}
	dev := clamp((idealDailySteps-steps)/idealDailySteps, -1, 1)
	value := fmt.Sprintf("%.0f avg daily steps", steps)
	if dev > neutralBand {
		t.addReadiness(-pc.WeightExercise*dev*0.5*scoreScale, Factor{
			Name:        "low_daily_movement",
			Value:       value,
			Description: "Daily movement ran well below a healthy step baseline.",
			Category:    CategoryHealth,
		})
	} else {
		t.addReadiness(pc.WeightExercise*0.5*scoreScale, Factor{
			Name:        "consistent_movement",
			Value:       value,
			Description: "Daily movement held a healthy baseline.",
			Category:    CategoryHealth,
		})
	}
}

func (t *factorTotals) heart(samples []*types.MetricSample, pc personalContext) {
	halfWeight := pc.WeightHeart * 0.5

	hrv, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.HeartRateVar })
	if n > 0 {
		dev := clamp((hrvBaselineMs-hrv)/hrvBaselineMs, -1, 1)
		value := fmt.Sprintf("%.0fms avg HRV", hrv)
		if dev > neutralBand {
			t.addBurnout(halfWeight*dev*scoreScale, Factor{
				Name:        "low_hrv",
				Value:       value,
				Description: "Heart-rate variability ran below baseline, a recovery warning sign.",
				Category:    CategoryHealth,
			})
		} else if dev < -neutralBand {
			t.addReadiness(halfWeight*clamp(-dev, 0, 1)*scoreScale, Factor{
				Name:        "strong_recovery",
				Value:       value,
				Description: "Heart-rate variability ran above baseline, indicating good recovery.",
				Category:    CategoryHealth,
			})
		}
	}

	rhr, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.RestingHeartRate })
	if n > 0 {
		dev := clamp((rhr-restingHRBaselineBPM)/restingHRFullScaleBPM, -1, 1)
		value := fmt.Sprintf("%.0fbpm avg resting HR", rhr)
		if dev > neutralBand {
			t.addBurnout(halfWeight*dev*scoreScale, Factor{
				Name:        "elevated_resting_hr",
				Value:       value,
				Description: "Resting heart rate ran above baseline.",
				Category:    CategoryHealth,
			})
		} else if dev < -neutralBand {
			t.addReadiness(halfWeight*clamp(-dev, 0, 1)*0.5*scoreScale, Factor{
				Name:        "low_resting_hr",
				Value:       value,
				Description: "Resting heart rate held below baseline.",
				Category:    CategoryHealth,
			})
		}
	}
}

func (t *factorTotals) overtime(samples []*types.MetricSample, pc personalContext, workFactor float64) {
	actual, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.OvertimeHours })
	if n == 0 {
		// Derive overtime from hours worked when the explicit column never
		// synced for the window.
		hours, hn := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.HoursWorked })
		if hn == 0 {
			return
		}
		actual = hours - pc.IdealWorkHours
		if actual < 0 {
			actual = 0
		}
	}
	dev := clamp(actual/overtimeFullScaleHours, 0, 1)
	if dev <= neutralBand {
		return
	}
	t.addBurnout(pc.WeightWorkload*dev*workFactor*scoreScale, Factor{
		Name:        "overtime",
		Value:       fmt.Sprintf("%.1fh avg daily overtime", actual),
		Description: "Sustained overtime beyond the ideal working day.",
		Category:    CategoryWork,
	})
}

func (t *factorTotals) meetings(samples []*types.MetricSample, pc personalContext, workFactor float64) {
	actual, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.MeetingHours })
	if n == 0 {
		return
	}
	felt := actual
	switch pc.SocialEnergyType {
	case types.SocialEnergyIntrovert:
		felt *= meetingLoadIntrovert
	case types.SocialEnergyExtrovert:
		felt *= meetingLoadExtrovert
	}
	load := clamp((felt-pc.MaxMeetingHours)/pc.MaxMeetingHours, -1, 1)
	value := fmt.Sprintf("%.1fh avg daily meetings (max %.1fh)", actual, pc.MaxMeetingHours)
	if load > neutralBand {
		t.addBurnout(pc.WeightMeetings*load*workFactor*scoreScale, Factor{
			Name:        "meeting_overload",
			Value:       value,
			Description: "Meeting hours ran past the personal daily ceiling.",
			Category:    CategoryWork,
		})
	} else if load < -neutralBand {
		t.addReadiness(pc.WeightMeetings*0.25*clamp(-load, 0, 1)*scoreScale, Factor{
			Name:        "meetings_in_balance",
			Value:       value,
			Description: "Meeting load stayed comfortably under the personal ceiling.",
			Category:    CategoryWork,
		})
	}
}

func (t *factorTotals) focus(samples []*types.MetricSample, pc personalContext, workFactor float64) {
	actual, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.FocusHours })
	if n == 0 {
		return
	}
	idealFocus := pc.IdealWorkHours * 0.25
	dev := clamp((idealFocus-actual)/idealFocus, -1, 1)
	value := fmt.Sprintf("%.1fh avg daily focus time", actual)
	if dev > neutralBand {
		t.addBurnout(pc.WeightWorkload*0.5*dev*workFactor*scoreScale, Factor{
			Name:        "low_focus_time",
			Value:       value,
			Description: "Uninterrupted focus time was scarce this week.",
			Category:    CategoryWork,
		})
	} else if dev < -neutralBand {
		t.addReadiness(pc.WeightWorkload*0.25*clamp(-dev, 0, 1)*scoreScale, Factor{
			Name:        "protected_focus_time",
			Value:       value,
			Description: "Focus time was well protected.",
			Category:    CategoryWork,
		})
	}
}

func (t *factorTotals) taskCompletion(samples []*types.MetricSample, pc personalContext, workFactor float64) {
	rate, n := meanFloat(samples, func(s *types.MetricSample) *float64 { return s.TaskCompletionRate })
	if n == 0 {
		return
	}
	c := clamp((rate-0.55)/0.45, -1, 1)
	value := fmt.Sprintf("%.0f%% task completion", rate*100)
	if c > neutralBand {
		t.addReadiness(pc.WeightWorkload*0.5*c*scoreScale, Factor{
			Name:        "healthy_task_completion",
			Value:       value,
			Description: "Planned work is getting finished at a healthy rate.",
			Category:    CategoryWork,
		})
	} else if c < -neutralBand {
		t.addBurnout(pc.WeightWorkload*0.25*(-c)*workFactor*scoreScale, Factor{
			Name:        "task_backlog",
			Value:       value,
			Description: "Task completion slipped well below plan.",
			Category:    CategoryWork,
		})
	}
}

func meanFloat(samples []*types.MetricSample, pick func(*types.MetricSample) *float64) (float64, int) {
	sum := 0.0
	n := 0
	for _, s := range samples {
		if s == nil {
			continue
		}
		if v := pick(s); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}

func meanIntAsFloat(samples []*types.MetricSample, pick func(*types.MetricSample) *int) (float64, int) {
	sum := 0.0
	n := 0
	for _, s := range samples {
		if s == nil {
			continue
		}
		if v := pick(s); v != nil {
			sum += float64(*v)
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sum / float64(n), n
}
