package types

import (
	"time"

	"github.com/google/uuid"
)

// ScoringConsent gates which data categories may feed an employee's score.
// Absence of a row means full consent; the flags default to true accordingly.
type ScoringConsent struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	UseHealthData       bool `gorm:"column:use_health_data;not null;default:true" json:"use_health_data"`
	UseWorkData         bool `gorm:"column:use_work_data;not null;default:true" json:"use_work_data"`
	UseCheckinData      bool `gorm:"column:use_checkin_data;not null;default:true" json:"use_checkin_data"`
	ShareWithAggregates bool `gorm:"column:share_with_aggregates;not null;default:true" json:"share_with_aggregates"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (ScoringConsent) TableName() string { return "scoring_consent" }

// FullConsent is what the engine assumes when no row exists.
func FullConsent(employeeID uuid.UUID) *ScoringConsent {
	return &ScoringConsent{
		EmployeeID:          employeeID,
		UseHealthData:       true,
		UseWorkData:         true,
		UseCheckinData:      true,
		ShareWithAggregates: true,
	}
}
