package scoring

import (
	"embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const interactionRulesEnv = "SCORING_RULES_YAML"

//go:embed rules.yaml
var rulesFS embed.FS

const (
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// InteractionRule is one co-occurrence condition: every required factor must
// be present with point magnitude at or above the cutoff for the rule's
// severity before the rule fires.
type InteractionRule struct {
	Name        string   `yaml:"name"`
	Severity    string   `yaml:"severity"`
	Penalty     float64  `yaml:"penalty"`
	Requires    []string `yaml:"requires"`
	Description string   `yaml:"description"`
}

type ruleSpec struct {
	Rules []InteractionRule `yaml:"rules"`
}

// fallback rule set used when the YAML is missing or invalid
var fallbackRules = []InteractionRule{
	{
		Name:        "exhaustion_loop",
		Severity:    SeverityCritical,
		Penalty:     8,
		Requires:    []string{"sleep_deficit", "overtime", "low_focus_time"},
		Description: "Short sleep, sustained overtime and fragmented focus are feeding each other; this compounds beyond the individual factors.",
	},
	{
		Name:        "workload_compound",
		Severity:    SeverityHigh,
		Penalty:     5,
		Requires:    []string{"overtime", "meeting_overload"},
		Description: "Heavy meeting load on top of overtime leaves no slack in the working day.",
	},
	{
		Name:        "recovery_collapse",
		Severity:    SeverityCritical,
		Penalty:     8,
		Requires:    []string{"sleep_deficit", "low_hrv"},
		Description: "Sleep deficit combined with suppressed heart-rate variability suggests recovery is not keeping up.",
	},
	{
		Name:        "strain_under_load",
		Severity:    SeverityHigh,
		Penalty:     4,
		Requires:    []string{"elevated_resting_hr", "overtime"},
		Description: "Elevated resting heart rate while working long hours points to accumulating physiological strain.",
	},
}

var (
	rulesOnce   sync.Once
	loadedRules []InteractionRule
)

// InteractionRules returns the active rule set: the file named by
// SCORING_RULES_YAML if set, else the embedded spec, else the in-code
// fallback.
func InteractionRules() []InteractionRule {
	rulesOnce.Do(func() {
		loadedRules = loadRules()
	})
	return loadedRules
}

func loadRules() []InteractionRule {
	if path := strings.TrimSpace(os.Getenv(interactionRulesEnv)); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			if rules, err := parseRules(raw); err == nil {
				return rules
			}
		}
	}
	raw, err := rulesFS.ReadFile("rules.yaml")
	if err != nil {
		return fallbackRules
	}
	rules, err := parseRules(raw)
	if err != nil {
		return fallbackRules
	}
	return rules
}

func parseRules(raw []byte) ([]InteractionRule, error) {
	var spec ruleSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("parse interaction rules: %w", err)
	}
	if len(spec.Rules) == 0 {
		return nil, fmt.Errorf("interaction rule spec has no rules")
	}
	for _, r := range spec.Rules {
		if r.Name == "" || len(r.Requires) == 0 || r.Penalty < 0 {
			return nil, fmt.Errorf("invalid interaction rule %q", r.Name)
		}
		if r.Severity != SeverityHigh && r.Severity != SeverityCritical {
			return nil, fmt.Errorf("interaction rule %q has unknown severity %q", r.Name, r.Severity)
		}
	}
	return spec.Rules, nil
}
