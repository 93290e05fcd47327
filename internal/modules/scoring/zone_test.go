package scoring

import "testing"

func TestClassifyZone(t *testing.T) {
	th := testThresholds()

	if got := classifyZone(75, 50, th); got != ZoneRed {
		t.Fatalf("expected red, got %q", got)
	}
	if got := classifyZone(50, 70, th); got != ZoneGreen {
		t.Fatalf("expected green, got %q", got)
	}
	if got := classifyZone(50, 50, th); got != ZoneYellow {
		t.Fatalf("expected yellow, got %q", got)
	}
}

func TestClassifyZone_RedWinsOverGreen(t *testing.T) {
	th := testThresholds()
	if got := classifyZone(75, 90, th); got != ZoneRed {
		t.Fatalf("expected red to take precedence, got %q", got)
	}
}

func TestClassifyZone_BoundaryIsInclusive(t *testing.T) {
	th := testThresholds()
	if got := classifyZone(70, 0, th); got != ZoneRed {
		t.Fatalf("expected red at exact cutoff, got %q", got)
	}
	if got := classifyZone(0, 65, th); got != ZoneGreen {
		t.Fatalf("expected green at exact cutoff, got %q", got)
	}
}
