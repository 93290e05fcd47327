package scoring

import (
	"fmt"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// resolveThresholds picks the effective cutoff set for the snapshot date.
// Precedence: active employee override, then organization default, then
// system default. Two overrides covering the same date are a configuration
// error, surfaced rather than silently resolved.
func resolveThresholds(snap Snapshot) (ResolvedThresholds, error) {
	var active []*types.ThresholdConfig
	for _, o := range snap.Overrides {
		if o == nil {
			continue
		}
		if o.CoversDate(snap.Date) {
			active = append(active, o)
		}
	}
	if len(active) > 1 {
		return ResolvedThresholds{}, &ConfigurationError{
			Reason: fmt.Sprintf("%d overlapping threshold overrides active on %s", len(active), snap.Date.Format("2006-01-02")),
		}
	}
	if len(active) == 1 {
		return fromConfig(active[0], ThresholdSourceOverride), nil
	}
	if snap.OrgDefault != nil {
		return fromConfig(snap.OrgDefault, ThresholdSourceOrg), nil
	}
	if snap.SystemDefault == nil {
		return ResolvedThresholds{}, &ConfigurationError{Reason: "no system default threshold configuration"}
	}
	return fromConfig(snap.SystemDefault, ThresholdSourceSystem), nil
}

func fromConfig(cfg *types.ThresholdConfig, source string) ResolvedThresholds {
	thresholdType := cfg.ThresholdType
	if thresholdType == "" {
		thresholdType = types.ThresholdTypeAbsolute
	}
	return ResolvedThresholds{
		BurnoutRedThreshold:          cfg.BurnoutRedThreshold,
		ReadinessGreenThreshold:      cfg.ReadinessGreenThreshold,
		InteractionHighThreshold:     cfg.InteractionHighThreshold,
		InteractionCriticalThreshold: cfg.InteractionCriticalThreshold,
		ThresholdType:                thresholdType,
		EnableInteractionEffects:     cfg.EnableInteractionEffects,
		EnableWeekendAdjustment:      cfg.EnableWeekendAdjustment,
		Source:                       source,
	}
}
