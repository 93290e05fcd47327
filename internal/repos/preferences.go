package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type PreferencesRepo interface {
	GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.PersonalPreferences, error)
	Upsert(ctx context.Context, tx *gorm.DB, prefs *types.PersonalPreferences) error
}

type preferencesRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) PreferencesRepo {
	return &preferencesRepo{
		db:  db,
		log: baseLog.With("repo", "PreferencesRepo"),
	}
}

func (r *preferencesRepo) GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.PersonalPreferences, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var row types.PersonalPreferences
	err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *preferencesRepo) Upsert(ctx context.Context, tx *gorm.DB, prefs *types.PersonalPreferences) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if prefs == nil || prefs.EmployeeID == uuid.Nil {
		return nil
	}
	if prefs.ID == uuid.Nil {
		prefs.ID = uuid.New()
	}
	prefs.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"ideal_sleep_hours", "ideal_work_hours", "ideal_exercise_minutes", "max_meeting_hours",
				"chronotype", "social_energy_type", "sleep_flexibility", "work_pattern",
				"weight_sleep", "weight_exercise", "weight_workload", "weight_meetings", "weight_heart",
				"updated_at",
			}),
		}).
		Create(prefs).Error
}
