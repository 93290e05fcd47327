package scoring

import (
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// System-wide fallbacks used when an employee has no preferences row.
const (
	defaultIdealSleepHours      = 8.0
	defaultIdealWorkHours       = 8.0
	defaultIdealExerciseMinutes = 45.0
	defaultMaxMeetingHours      = 3.0

	defaultWeightSleep    = 0.30
	defaultWeightExercise = 0.15
	defaultWeightWorkload = 0.20
	defaultWeightMeetings = 0.15
	defaultWeightHeart    = 0.20
)

// Life-event adjustment clamps: each event contributes at most +-0.5 to a
// metric's multiplier, and the aggregate stays inside [-0.8, +1.0].
const (
	perEventAdjustmentMin = -0.5
	perEventAdjustmentMax = 0.5
	aggAdjustmentMin      = -0.8
	aggAdjustmentMax      = 1.0
)

// personalContext is the merged adjustment vector for one scoring run: ideal
// targets for normalizing raw values plus effective (life-event adjusted)
// weights per metric group.
type personalContext struct {
	IdealSleepHours      float64
	IdealWorkHours       float64
	IdealExerciseMinutes float64
	MaxMeetingHours      float64

	Chronotype       string
	SocialEnergyType string

	WeightSleep    float64
	WeightExercise float64
	WeightWorkload float64
	WeightMeetings float64
	WeightHeart    float64

	ActiveEvents []ActiveLifeEvent
}

// buildPersonalContext never fails: missing preferences fall back to system
// defaults and every adjustment is clamped. The four life-event adjustment
// kinds map onto the weight groups as sleep->sleep, exercise->exercise,
// work->workload+meetings, stress tolerance->heart-derived metrics.
func buildPersonalContext(prefs *types.PersonalPreferences, events []*types.LifeEvent) personalContext {
	pc := personalContext{
		IdealSleepHours:      defaultIdealSleepHours,
		IdealWorkHours:       defaultIdealWorkHours,
		IdealExerciseMinutes: defaultIdealExerciseMinutes,
		MaxMeetingHours:      defaultMaxMeetingHours,
		Chronotype:           types.ChronotypeIntermediate,
		SocialEnergyType:     types.SocialEnergyAmbivert,
		WeightSleep:          defaultWeightSleep,
		WeightExercise:       defaultWeightExercise,
		WeightWorkload:       defaultWeightWorkload,
		WeightMeetings:       defaultWeightMeetings,
		WeightHeart:          defaultWeightHeart,
	}
	if prefs != nil {
		if prefs.IdealSleepHours > 0 {
			pc.IdealSleepHours = prefs.IdealSleepHours
		}
		if prefs.IdealWorkHours > 0 {
			pc.IdealWorkHours = prefs.IdealWorkHours
		}
		if prefs.IdealExerciseMinutes > 0 {
			pc.IdealExerciseMinutes = prefs.IdealExerciseMinutes
		}
		if prefs.MaxMeetingHours > 0 {
			pc.MaxMeetingHours = prefs.MaxMeetingHours
		}
		if prefs.Chronotype != "" {
			pc.Chronotype = prefs.Chronotype
		}
		if prefs.SocialEnergyType != "" {
			pc.SocialEnergyType = prefs.SocialEnergyType
		}
		if prefs.WeightSleep > 0 {
			pc.WeightSleep = prefs.WeightSleep
		}
		if prefs.WeightExercise > 0 {
			pc.WeightExercise = prefs.WeightExercise
		}
		if prefs.WeightWorkload > 0 {
			pc.WeightWorkload = prefs.WeightWorkload
		}
		if prefs.WeightMeetings > 0 {
			pc.WeightMeetings = prefs.WeightMeetings
		}
		if prefs.WeightHeart > 0 {
			pc.WeightHeart = prefs.WeightHeart
		}
	}

	sleepAdj := foldAdjustments(events, func(e *types.LifeEvent) float64 { return e.SleepAdjustment })
	workAdj := foldAdjustments(events, func(e *types.LifeEvent) float64 { return e.WorkAdjustment })
	exerciseAdj := foldAdjustments(events, func(e *types.LifeEvent) float64 { return e.ExerciseAdjustment })
	stressAdj := foldAdjustments(events, func(e *types.LifeEvent) float64 { return e.StressToleranceAdjustment })

	pc.WeightSleep *= 1 + sleepAdj
	pc.WeightExercise *= 1 + exerciseAdj
	pc.WeightWorkload *= 1 + workAdj
	pc.WeightMeetings *= 1 + workAdj
	pc.WeightHeart *= 1 + stressAdj

	for _, e := range events {
		if e == nil {
			continue
		}
		pc.ActiveEvents = append(pc.ActiveEvents, ActiveLifeEvent{
			Label:          e.Label,
			AdjustmentType: e.EventType,
		})
	}
	return pc
}

// foldAdjustments stacks one adjustment kind across the active events: each
// event's value is clamped first, then the running aggregate is re-clamped
// after every addition so the two bounds stay independently testable.
func foldAdjustments(events []*types.LifeEvent, pick func(*types.LifeEvent) float64) float64 {
	agg := 0.0
	for _, e := range events {
		if e == nil {
			continue
		}
		adj := clamp(pick(e), perEventAdjustmentMin, perEventAdjustmentMax)
		agg = clamp(agg+adj, aggAdjustmentMin, aggAdjustmentMax)
	}
	return agg
}
