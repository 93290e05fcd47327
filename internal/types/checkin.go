package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Checkin is an append-only self-reported feeling entry. Ordinal fields use a
// fixed 1-5 scale. Multiple entries per day are allowed; the most recent one
// wins for "current feeling".
type Checkin struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	OverallFeeling int `gorm:"column:overall_feeling;not null" json:"overall_feeling"`
	EnergyLevel    int `gorm:"column:energy_level;not null" json:"energy_level"`
	StressLevel    int `gorm:"column:stress_level;not null" json:"stress_level"`
	Motivation     int `gorm:"column:motivation;not null" json:"motivation"`

	// Optional validated-instrument responses, keyed by instrument item id.
	InstrumentResponses datatypes.JSON `gorm:"type:jsonb;column:instrument_responses" json:"instrument_responses,omitempty"`
	Note                *string        `gorm:"column:note" json:"note,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (Checkin) TableName() string { return "checkin" }
