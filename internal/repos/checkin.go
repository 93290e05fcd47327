package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type CheckinRepo interface {
	GetByEmployeeAndRange(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, from, to time.Time) ([]*types.Checkin, error)
	Create(ctx context.Context, tx *gorm.DB, checkin *types.Checkin) error
}

type checkinRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCheckinRepo(db *gorm.DB, baseLog *logger.Logger) CheckinRepo {
	return &checkinRepo{
		db:  db,
		log: baseLog.With("repo", "CheckinRepo"),
	}
}

func (r *checkinRepo) GetByEmployeeAndRange(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, from, to time.Time) ([]*types.Checkin, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.Checkin
	err := transaction.WithContext(ctx).
		Where("employee_id = ? AND created_at >= ? AND created_at < ?", employeeID, from, to).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create appends a check-in. Rows are never updated or deleted afterwards.
func (r *checkinRepo) Create(ctx context.Context, tx *gorm.DB, checkin *types.Checkin) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if checkin == nil || checkin.EmployeeID == uuid.Nil {
		return nil
	}
	if checkin.ID == uuid.Nil {
		checkin.ID = uuid.New()
	}
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = time.Now().UTC()
	}
	return transaction.WithContext(ctx).Create(checkin).Error
}
