package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ThresholdTypeAbsolute = "absolute"
	// Percentile cutoffs are pre-resolved to numeric values by an external
	// analytics job before they land in this table. The scoring engine always
	// compares absolutely against whatever numbers it is given.
	ThresholdTypePercentile = "percentile"
)

// ThresholdConfig is one layer of score cutoffs. Three scopes share this
// shape: the system default (no owner), at most one per-organization default,
// and time-bounded per-employee overrides. At most one override may cover a
// given employee and date; overlap is a configuration error.
type ThresholdConfig struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	EmployeeID     *uuid.UUID `gorm:"type:uuid;index" json:"employee_id,omitempty"`

	BurnoutRedThreshold          float64 `gorm:"column:burnout_red_threshold;not null" json:"burnout_red_threshold"`
	ReadinessGreenThreshold      float64 `gorm:"column:readiness_green_threshold;not null" json:"readiness_green_threshold"`
	InteractionHighThreshold     float64 `gorm:"column:interaction_high_threshold;not null" json:"interaction_high_threshold"`
	InteractionCriticalThreshold float64 `gorm:"column:interaction_critical_threshold;not null" json:"interaction_critical_threshold"`

	ThresholdType            string `gorm:"column:threshold_type;not null;default:'absolute'" json:"threshold_type"`
	EnableInteractionEffects bool   `gorm:"column:enable_interaction_effects;not null;default:true" json:"enable_interaction_effects"`
	EnableWeekendAdjustment  bool   `gorm:"column:enable_weekend_adjustment;not null;default:true" json:"enable_weekend_adjustment"`

	// Only employee overrides carry a validity range and a reason.
	StartsAt *time.Time `gorm:"type:date;index" json:"starts_at,omitempty"`
	EndsAt   *time.Time `gorm:"type:date;index" json:"ends_at,omitempty"`
	Reason   *string    `gorm:"column:reason" json:"reason,omitempty"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ThresholdConfig) TableName() string { return "threshold_config" }

// CoversDate reports whether an override's [StartsAt, EndsAt) range contains
// day. Rows without a StartsAt (system/org layers) cover every date.
func (t *ThresholdConfig) CoversDate(day time.Time) bool {
	if t == nil {
		return false
	}
	if t.StartsAt != nil && day.Before(*t.StartsAt) {
		return false
	}
	if t.EndsAt != nil && !day.Before(*t.EndsAt) {
		return false
	}
	return true
}
