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

type ScoringConsentRepo interface {
	// GetByEmployeeID returns nil when no row exists; callers treat that as
	// full consent.
	GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.ScoringConsent, error)
	Upsert(ctx context.Context, tx *gorm.DB, consent *types.ScoringConsent) error
}

type scoringConsentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScoringConsentRepo(db *gorm.DB, baseLog *logger.Logger) ScoringConsentRepo {
	return &scoringConsentRepo{
		db:  db,
		log: baseLog.With("repo", "ScoringConsentRepo"),
	}
}

func (r *scoringConsentRepo) GetByEmployeeID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.ScoringConsent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var row types.ScoringConsent
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

func (r *scoringConsentRepo) Upsert(ctx context.Context, tx *gorm.DB, consent *types.ScoringConsent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if consent == nil || consent.EmployeeID == uuid.Nil {
		return nil
	}
	if consent.ID == uuid.Nil {
		consent.ID = uuid.New()
	}
	consent.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"use_health_data", "use_work_data", "use_checkin_data", "share_with_aggregates", "updated_at",
			}),
		}).
		Create(consent).Error
}
