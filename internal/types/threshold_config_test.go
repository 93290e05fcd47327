package types

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestThresholdConfig_CoversDate(t *testing.T) {
	start := day(2025, 3, 1)
	end := day(2025, 4, 1)
	cfg := &ThresholdConfig{StartsAt: &start, EndsAt: &end}

	if !cfg.CoversDate(day(2025, 3, 1)) {
		t.Fatalf("start date should be covered")
	}
	if !cfg.CoversDate(day(2025, 3, 15)) {
		t.Fatalf("mid-range date should be covered")
	}
	if cfg.CoversDate(day(2025, 4, 1)) {
		t.Fatalf("end date is exclusive")
	}
	if cfg.CoversDate(day(2025, 2, 28)) {
		t.Fatalf("date before start should not be covered")
	}
}

func TestThresholdConfig_OpenEndedCoverage(t *testing.T) {
	cfg := &ThresholdConfig{}
	if !cfg.CoversDate(day(2025, 3, 15)) {
		t.Fatalf("config without a validity range covers every date")
	}

	start := day(2025, 3, 1)
	cfg.StartsAt = &start
	if !cfg.CoversDate(day(2030, 1, 1)) {
		t.Fatalf("open-ended config covers all dates after start")
	}
}

func TestLifeEvent_ActiveOn(t *testing.T) {
	end := day(2025, 4, 1)
	event := &LifeEvent{StartsAt: day(2025, 3, 1), EndsAt: &end}

	if !event.ActiveOn(day(2025, 3, 1)) {
		t.Fatalf("start date should be active")
	}
	if event.ActiveOn(day(2025, 4, 1)) {
		t.Fatalf("end date is exclusive")
	}

	open := &LifeEvent{StartsAt: day(2025, 3, 1)}
	if !open.ActiveOn(day(2030, 1, 1)) {
		t.Fatalf("open-ended event stays active")
	}
}
