package scoring

import "math"

// detectInteractions scans the factor list for compounding co-occurrences.
// It returns the fired effects and the total burnout penalty in points. When
// interaction effects are disabled by configuration it is a no-op
// pass-through.
func detectInteractions(factors []Factor, thresholds ResolvedThresholds, rules []InteractionRule) ([]InteractionEffect, float64) {
	if !thresholds.EnableInteractionEffects {
		return nil, 0
	}

	byName := make(map[string]Factor, len(factors))
	for _, f := range factors {
		byName[f.Name] = f
	}

	var effects []InteractionEffect
	penalty := 0.0
	for _, rule := range rules {
		cutoff := thresholds.InteractionHighThreshold
		if rule.Severity == SeverityCritical {
			cutoff = thresholds.InteractionCriticalThreshold
		}
		if !ruleFires(rule, byName, cutoff) {
			continue
		}
		effects = append(effects, InteractionEffect{
			Name:        rule.Name,
			Severity:    rule.Severity,
			Description: rule.Description,
		})
		penalty += rule.Penalty
	}
	return effects, penalty
}

func ruleFires(rule InteractionRule, byName map[string]Factor, cutoff float64) bool {
	for _, name := range rule.Requires {
		f, ok := byName[name]
		if !ok {
			return false
		}
		if math.Abs(f.Weight) < cutoff {
			return false
		}
	}
	return true
}
