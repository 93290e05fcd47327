package types

import (
	"time"

	"github.com/google/uuid"
)

// MetricSample holds one calendar day of health and work metrics for one
// employee. All metric columns are nullable: a nil field means "no reading for
// that day", which is different from a zero reading. Later syncs merge
// non-null fields over the existing row and never null out a present value.
type MetricSample struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_employee_date,unique" json:"employee_id"`
	Employee   *Employee `gorm:"constraint:OnDelete:CASCADE;foreignKey:EmployeeID;references:ID" json:"employee,omitempty"`
	Date       time.Time `gorm:"type:date;not null;index:idx_employee_date,unique" json:"date"`

	// Health metrics
	RestingHeartRate *float64 `gorm:"column:resting_heart_rate" json:"resting_heart_rate,omitempty"`
	AvgHeartRate     *float64 `gorm:"column:avg_heart_rate" json:"avg_heart_rate,omitempty"`
	HeartRateVar     *float64 `gorm:"column:heart_rate_var" json:"heart_rate_var,omitempty"`
	SleepHours       *float64 `gorm:"column:sleep_hours" json:"sleep_hours,omitempty"`
	DeepSleepHours   *float64 `gorm:"column:deep_sleep_hours" json:"deep_sleep_hours,omitempty"`
	RemSleepHours    *float64 `gorm:"column:rem_sleep_hours" json:"rem_sleep_hours,omitempty"`
	Steps            *int     `gorm:"column:steps" json:"steps,omitempty"`
	ExerciseMinutes  *float64 `gorm:"column:exercise_minutes" json:"exercise_minutes,omitempty"`
	HealthSource     *string  `gorm:"column:health_source" json:"health_source,omitempty"`

	// Work metrics
	HoursWorked        *float64 `gorm:"column:hours_worked" json:"hours_worked,omitempty"`
	OvertimeHours      *float64 `gorm:"column:overtime_hours" json:"overtime_hours,omitempty"`
	MeetingCount       *int     `gorm:"column:meeting_count" json:"meeting_count,omitempty"`
	MeetingHours       *float64 `gorm:"column:meeting_hours" json:"meeting_hours,omitempty"`
	FocusHours         *float64 `gorm:"column:focus_hours" json:"focus_hours,omitempty"`
	TaskCompletionRate *float64 `gorm:"column:task_completion_rate" json:"task_completion_rate,omitempty"`
	EmailsSent         *int     `gorm:"column:emails_sent" json:"emails_sent,omitempty"`
	WorkSource         *string  `gorm:"column:work_source" json:"work_source,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (MetricSample) TableName() string { return "metric_sample" }
