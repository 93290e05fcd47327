package scoring

import "testing"

func TestInteractionRules_EmbeddedSpecLoads(t *testing.T) {
	rules := InteractionRules()
	if len(rules) < 4 {
		t.Fatalf("expected at least 4 rules, got %d", len(rules))
	}
	byName := map[string]InteractionRule{}
	for _, r := range rules {
		byName[r.Name] = r
	}
	loop, ok := byName["exhaustion_loop"]
	if !ok {
		t.Fatalf("expected exhaustion_loop rule")
	}
	if loop.Severity != SeverityCritical || loop.Penalty != 8 {
		t.Fatalf("unexpected exhaustion_loop: %#v", loop)
	}
	if len(loop.Requires) != 3 {
		t.Fatalf("expected 3 preconditions, got %v", loop.Requires)
	}
}

func TestParseRules_RejectsInvalid(t *testing.T) {
	if _, err := parseRules([]byte("rules: []")); err == nil {
		t.Fatalf("expected error for empty rule set")
	}
	if _, err := parseRules([]byte("not: yaml: [")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
	bad := `
rules:
  - name: x
    severity: extreme
    penalty: 1
    requires: [a]
`
	if _, err := parseRules([]byte(bad)); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}

func TestParseRules_MatchesFallback(t *testing.T) {
	raw, err := rulesFS.ReadFile("rules.yaml")
	if err != nil {
		t.Fatalf("embedded spec missing: %v", err)
	}
	rules, err := parseRules(raw)
	if err != nil {
		t.Fatalf("embedded spec invalid: %v", err)
	}
	if len(rules) != len(fallbackRules) {
		t.Fatalf("embedded spec and fallback diverged: %d vs %d", len(rules), len(fallbackRules))
	}
	for i, r := range rules {
		if r.Name != fallbackRules[i].Name || r.Severity != fallbackRules[i].Severity || r.Penalty != fallbackRules[i].Penalty {
			t.Fatalf("rule %d diverged: %#v vs %#v", i, r, fallbackRules[i])
		}
	}
}
