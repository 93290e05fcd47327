package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ChronotypeEarlyBird    = "early_bird"
	ChronotypeIntermediate = "intermediate"
	ChronotypeNightOwl     = "night_owl"

	SocialEnergyIntrovert = "introvert"
	SocialEnergyAmbivert  = "ambivert"
	SocialEnergyExtrovert = "extrovert"
)

// PersonalPreferences is the one active row of ideal targets and trait
// categories an employee maintains for themselves. The five weight fields are
// a single importance budget and must sum to 1.0.
type PersonalPreferences struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`

	IdealSleepHours      float64 `gorm:"column:ideal_sleep_hours;not null;default:8" json:"ideal_sleep_hours"`
	IdealWorkHours       float64 `gorm:"column:ideal_work_hours;not null;default:8" json:"ideal_work_hours"`
	IdealExerciseMinutes float64 `gorm:"column:ideal_exercise_minutes;not null;default:45" json:"ideal_exercise_minutes"`
	MaxMeetingHours      float64 `gorm:"column:max_meeting_hours;not null;default:3" json:"max_meeting_hours"`

	Chronotype       string `gorm:"column:chronotype;not null;default:'intermediate'" json:"chronotype"`
	SocialEnergyType string `gorm:"column:social_energy_type;not null;default:'ambivert'" json:"social_energy_type"`
	SleepFlexibility string `gorm:"column:sleep_flexibility;not null;default:'moderate'" json:"sleep_flexibility"`
	WorkPattern      string `gorm:"column:work_pattern;not null;default:'steady'" json:"work_pattern"`

	WeightSleep    float64 `gorm:"column:weight_sleep;not null;default:0.30" json:"weight_sleep"`
	WeightExercise float64 `gorm:"column:weight_exercise;not null;default:0.15" json:"weight_exercise"`
	WeightWorkload float64 `gorm:"column:weight_workload;not null;default:0.20" json:"weight_workload"`
	WeightMeetings float64 `gorm:"column:weight_meetings;not null;default:0.15" json:"weight_meetings"`
	WeightHeart    float64 `gorm:"column:weight_heart;not null;default:0.20" json:"weight_heart"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (PersonalPreferences) TableName() string { return "personal_preferences" }
