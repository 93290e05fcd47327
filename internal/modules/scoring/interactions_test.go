package scoring

import (
	"testing"
)

func testThresholds() ResolvedThresholds {
	return ResolvedThresholds{
		BurnoutRedThreshold:          70,
		ReadinessGreenThreshold:      65,
		InteractionHighThreshold:     8,
		InteractionCriticalThreshold: 12,
		EnableInteractionEffects:     true,
		EnableWeekendAdjustment:      true,
	}
}

func TestDetectInteractions_RuleFiresWhenAllAboveCutoff(t *testing.T) {
	factors := []Factor{
		{Name: "overtime", Weight: -12},
		{Name: "meeting_overload", Weight: -9},
	}
	effects, penalty := detectInteractions(factors, testThresholds(), InteractionRules())
	if len(effects) != 1 {
		t.Fatalf("expected 1 effect, got %d", len(effects))
	}
	if effects[0].Name != "workload_compound" {
		t.Fatalf("unexpected effect %q", effects[0].Name)
	}
	if effects[0].Severity != SeverityHigh {
		t.Fatalf("unexpected severity %q", effects[0].Severity)
	}
	if penalty != 5 {
		t.Fatalf("expected penalty 5, got %v", penalty)
	}
}

func TestDetectInteractions_BelowCutoffDoesNotFire(t *testing.T) {
	factors := []Factor{
		{Name: "overtime", Weight: -12},
		{Name: "meeting_overload", Weight: -7.9},
	}
	effects, penalty := detectInteractions(factors, testThresholds(), InteractionRules())
	if len(effects) != 0 || penalty != 0 {
		t.Fatalf("rule fired below cutoff: %v penalty %v", effects, penalty)
	}
}

func TestDetectInteractions_CriticalUsesCriticalCutoff(t *testing.T) {
	// Both above high cutoff but below critical: recovery_collapse must stay
	// quiet.
	factors := []Factor{
		{Name: "sleep_deficit", Weight: -11},
		{Name: "low_hrv", Weight: -11},
	}
	effects, _ := detectInteractions(factors, testThresholds(), InteractionRules())
	if len(effects) != 0 {
		t.Fatalf("critical rule fired at high cutoff: %v", effects)
	}

	factors = []Factor{
		{Name: "sleep_deficit", Weight: -13},
		{Name: "low_hrv", Weight: -12},
	}
	effects, penalty := detectInteractions(factors, testThresholds(), InteractionRules())
	if len(effects) != 1 || effects[0].Name != "recovery_collapse" {
		t.Fatalf("expected recovery_collapse, got %v", effects)
	}
	if penalty != 8 {
		t.Fatalf("expected penalty 8, got %v", penalty)
	}
}

func TestDetectInteractions_MissingPreconditionFactor(t *testing.T) {
	factors := []Factor{
		{Name: "sleep_deficit", Weight: -30},
		{Name: "overtime", Weight: -20},
	}
	// exhaustion_loop also needs low_focus_time
	effects, _ := detectInteractions(factors, testThresholds(), InteractionRules())
	for _, e := range effects {
		if e.Name == "exhaustion_loop" {
			t.Fatalf("exhaustion_loop fired without low_focus_time")
		}
	}
}

func TestDetectInteractions_DisabledIsNoOp(t *testing.T) {
	factors := []Factor{
		{Name: "overtime", Weight: -20},
		{Name: "meeting_overload", Weight: -15},
	}
	th := testThresholds()
	th.EnableInteractionEffects = false
	effects, penalty := detectInteractions(factors, th, InteractionRules())
	if effects != nil || penalty != 0 {
		t.Fatalf("expected no-op when disabled, got %v penalty %v", effects, penalty)
	}
}
