package scoring

import (
	"math"
	"sort"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// Recommendation categories form a closed set; selection is explicit pattern
// matching over the computed factors and effects, never string parsing.
const (
	RecommendationRest       = "rest"
	RecommendationWorkload   = "workload"
	RecommendationMeetings   = "meetings"
	RecommendationRecovery   = "recovery"
	RecommendationMomentum   = "momentum"
	RecommendationEscalation = "escalation"
)

// buildExplanation assembles the full explanation from the finished score
// result. It always returns both recommendation sets; role-based redaction is
// the caller's concern at the boundary.
func buildExplanation(result *ScoreResult, pc personalContext) *Explanation {
	factors := make([]Factor, len(result.Factors))
	copy(factors, result.Factors)
	sort.SliceStable(factors, func(i, j int) bool {
		return math.Abs(factors[i].Weight) > math.Abs(factors[j].Weight)
	})

	return &Explanation{
		Zone:           result.Zone,
		BurnoutScore:   result.BurnoutScore,
		ReadinessScore: result.ReadinessScore,
		Factors:        factors,
		Recommendations: RecommendationSets{
			Personal:   personalRecommendations(result, pc),
			Leadership: leadershipRecommendations(result),
		},
		Context: ExplanationContext{
			InteractionEffects: result.InteractionEffects,
			Calibration:        result.Calibration,
			ActiveLifeEvents:   result.ActiveLifeEvents,
		},
	}
}

func hasFactor(result *ScoreResult, name string) bool {
	for _, f := range result.Factors {
		if f.Name == name {
			return true
		}
	}
	return false
}

func hasEffect(result *ScoreResult, name string) bool {
	for _, e := range result.InteractionEffects {
		if e.Name == name {
			return true
		}
	}
	return false
}

func personalRecommendations(result *ScoreResult, pc personalContext) []Recommendation {
	var recs []Recommendation

	if hasFactor(result, "sleep_deficit") {
		text := "Protect your sleep window this week; even 30 extra minutes moves your recovery."
		if pc.Chronotype == types.ChronotypeNightOwl {
			text = "Protect your natural late sleep window; push morning commitments later rather than cutting sleep short."
		}
		recs = append(recs, Recommendation{Category: RecommendationRest, Text: text})
	}
	if hasFactor(result, "overtime") {
		recs = append(recs, Recommendation{Category: RecommendationWorkload, Text: "Set a hard stop for your working day; the overtime pattern is sustained, not a one-off."})
	}
	if hasFactor(result, "meeting_overload") {
		text := "Decline or shorten low-value meetings; you are past your meeting ceiling."
		if pc.SocialEnergyType == types.SocialEnergyIntrovert {
			text = "Block recovery gaps between meetings; back-to-back calls drain you faster than most."
		}
		recs = append(recs, Recommendation{Category: RecommendationMeetings, Text: text})
	}
	if hasFactor(result, "low_hrv") || hasFactor(result, "elevated_resting_hr") {
		recs = append(recs, Recommendation{Category: RecommendationRecovery, Text: "Your body is signalling strain; favor light activity and early nights over pushing through."})
	}
	if hasFactor(result, "low_exercise") || hasFactor(result, "low_daily_movement") {
		recs = append(recs, Recommendation{Category: RecommendationRecovery, Text: "Short daily movement breaks will do more for your energy right now than one big session."})
	}
	if hasEffect(result, "exhaustion_loop") || hasEffect(result, "recovery_collapse") {
		recs = append(recs, Recommendation{Category: RecommendationEscalation, Text: "Several pressures are compounding. Consider raising this with your manager or taking a recovery day."})
	}

	if len(recs) == 0 {
		switch result.Zone {
		case ZoneGreen:
			recs = append(recs, Recommendation{Category: RecommendationMomentum, Text: "You are in good shape; keep the routines that got you here."})
		default:
			recs = append(recs, Recommendation{Category: RecommendationMomentum, Text: "Nothing stands out this week; a steady routine is the best next step."})
		}
	}
	return recs
}

// leadershipRecommendations are category-tagged and deliberately free of raw
// health-metric values.
func leadershipRecommendations(result *ScoreResult) []Recommendation {
	var recs []Recommendation

	switch result.Zone {
	case ZoneRed:
		recs = append(recs, Recommendation{Category: RecommendationEscalation, Text: "This report is in the red zone. Check in personally this week and reduce delivery pressure where possible."})
	case ZoneYellow:
		recs = append(recs, Recommendation{Category: RecommendationWorkload, Text: "Early warning signs are present. Review workload and priorities together before they compound."})
	case ZoneGreen:
		recs = append(recs, Recommendation{Category: RecommendationMomentum, Text: "This report is doing well. Recognize the sustainable pace rather than adding load."})
	}

	if hasFactor(result, "overtime") {
		recs = append(recs, Recommendation{Category: RecommendationWorkload, Text: "Sustained overtime detected. Rebalance scope or staffing for this report."})
	}
	if hasFactor(result, "meeting_overload") {
		recs = append(recs, Recommendation{Category: RecommendationMeetings, Text: "Meeting load is above this report's sustainable ceiling. Audit recurring invites."})
	}
	if hasEffect(result, "workload_compound") || hasEffect(result, "exhaustion_loop") {
		recs = append(recs, Recommendation{Category: RecommendationEscalation, Text: "Multiple workload pressures are compounding for this report. Intervene on priorities now rather than at the next review."})
	}
	return recs
}
