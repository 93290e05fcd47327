package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wellpulse/wellpulse-backend/internal/types"
)

func override(employeeID uuid.UUID, red float64, start time.Time, end *time.Time) *types.ThresholdConfig {
	cfg := testSystemDefault()
	cfg.ID = uuid.New()
	cfg.EmployeeID = &employeeID
	cfg.BurnoutRedThreshold = red
	cfg.StartsAt = &start
	cfg.EndsAt = end
	return cfg
}

func TestResolveThresholds_SystemDefaultWhenNothingElse(t *testing.T) {
	snap := baseSnapshot(uuid.New())
	got, err := resolveThresholds(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != ThresholdSourceSystem {
		t.Fatalf("expected system source, got %q", got.Source)
	}
	if got.BurnoutRedThreshold != 70 {
		t.Fatalf("expected red=70, got %v", got.BurnoutRedThreshold)
	}
}

func TestResolveThresholds_OrgBeatsSystem(t *testing.T) {
	snap := baseSnapshot(uuid.New())
	orgID := uuid.New()
	org := testSystemDefault()
	org.OrganizationID = &orgID
	org.BurnoutRedThreshold = 75
	snap.OrgDefault = org

	got, err := resolveThresholds(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != ThresholdSourceOrg {
		t.Fatalf("expected org source, got %q", got.Source)
	}
	if got.BurnoutRedThreshold != 75 {
		t.Fatalf("expected red=75, got %v", got.BurnoutRedThreshold)
	}
}

func TestResolveThresholds_OverrideBeatsOrg(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	orgID := uuid.New()
	org := testSystemDefault()
	org.OrganizationID = &orgID
	snap.OrgDefault = org
	snap.Overrides = []*types.ThresholdConfig{
		override(employeeID, 85, testDate.AddDate(0, 0, -10), nil),
	}

	got, err := resolveThresholds(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != ThresholdSourceOverride {
		t.Fatalf("expected override source, got %q", got.Source)
	}
	if got.BurnoutRedThreshold != 85 {
		t.Fatalf("expected red=85, got %v", got.BurnoutRedThreshold)
	}
}

func TestResolveThresholds_ExpiredOverrideIgnored(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	end := testDate.AddDate(0, 0, -1)
	snap.Overrides = []*types.ThresholdConfig{
		override(employeeID, 85, testDate.AddDate(0, 0, -30), &end),
	}

	got, err := resolveThresholds(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != ThresholdSourceSystem {
		t.Fatalf("expected system source for expired override, got %q", got.Source)
	}
}

func TestResolveThresholds_EndDateIsExclusive(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	end := testDate
	snap.Overrides = []*types.ThresholdConfig{
		override(employeeID, 85, testDate.AddDate(0, 0, -30), &end),
	}

	got, err := resolveThresholds(snap)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Source != ThresholdSourceSystem {
		t.Fatalf("override ending on the evaluation date should not apply, got %q", got.Source)
	}
}

func TestResolveThresholds_AmbiguousOverridesFail(t *testing.T) {
	employeeID := uuid.New()
	snap := baseSnapshot(employeeID)
	snap.Overrides = []*types.ThresholdConfig{
		override(employeeID, 85, testDate.AddDate(0, 0, -10), nil),
		override(employeeID, 90, testDate.AddDate(0, 0, -5), nil),
	}

	_, err := resolveThresholds(snap)
	if err == nil {
		t.Fatalf("expected configuration error for overlapping overrides")
	}
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %T: %v", err, err)
	}
}

func TestResolveThresholds_MissingSystemDefaultFails(t *testing.T) {
	snap := Snapshot{EmployeeID: uuid.New(), Date: testDate}
	_, err := resolveThresholds(snap)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for missing system default, got %v", err)
	}
}
