package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifeEvent is a temporary personal circumstance ("new parent", "medical
// leave") that adjusts scoring while active. EndsAt nil means open-ended.
// Several events may be active at once; their adjustments stack additively.
type LifeEvent struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	Label     string     `gorm:"column:label;not null" json:"label"`
	EventType string     `gorm:"column:event_type;not null" json:"event_type"`
	StartsAt  time.Time  `gorm:"type:date;not null;index" json:"starts_at"`
	EndsAt    *time.Time `gorm:"type:date;index" json:"ends_at,omitempty"`

	// Signed weight adjustments applied while the event is active.
	SleepAdjustment           float64 `gorm:"column:sleep_adjustment;not null;default:0" json:"sleep_adjustment"`
	WorkAdjustment            float64 `gorm:"column:work_adjustment;not null;default:0" json:"work_adjustment"`
	ExerciseAdjustment        float64 `gorm:"column:exercise_adjustment;not null;default:0" json:"exercise_adjustment"`
	StressToleranceAdjustment float64 `gorm:"column:stress_tolerance_adjustment;not null;default:0" json:"stress_tolerance_adjustment"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (LifeEvent) TableName() string { return "life_event" }

// ActiveOn reports whether the event's [StartsAt, EndsAt) range contains day.
func (e *LifeEvent) ActiveOn(day time.Time) bool {
	if e == nil {
		return false
	}
	if day.Before(e.StartsAt) {
		return false
	}
	if e.EndsAt != nil && !day.Before(*e.EndsAt) {
		return false
	}
	return true
}
