package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type LifeEventRepo interface {
	GetActive(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, asOf time.Time) ([]*types.LifeEvent, error)
	ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*types.LifeEvent, error)
	Create(ctx context.Context, tx *gorm.DB, event *types.LifeEvent) error
	End(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, endsAt time.Time) error
}

type lifeEventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLifeEventRepo(db *gorm.DB, baseLog *logger.Logger) LifeEventRepo {
	return &lifeEventRepo{
		db:  db,
		log: baseLog.With("repo", "LifeEventRepo"),
	}
}

func (r *lifeEventRepo) GetActive(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, asOf time.Time) ([]*types.LifeEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.LifeEvent
	err := transaction.WithContext(ctx).
		Where("employee_id = ? AND starts_at <= ? AND (ends_at IS NULL OR ends_at > ?)", employeeID, asOf, asOf).
		Order("starts_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lifeEventRepo) ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*types.LifeEvent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.LifeEvent
	err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("starts_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *lifeEventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.LifeEvent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if event == nil || event.EmployeeID == uuid.Nil {
		return nil
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(event).Error
}

func (r *lifeEventRepo) End(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, endsAt time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if eventID == uuid.Nil {
		return nil
	}
	return transaction.WithContext(ctx).
		Model(&types.LifeEvent{}).
		Where("id = ?", eventID).
		Updates(map[string]interface{}{
			"ends_at":    endsAt,
			"updated_at": time.Now().UTC(),
		}).Error
}
