package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type ThresholdConfigRepo interface {
	GetSystemDefault(ctx context.Context, tx *gorm.DB) (*types.ThresholdConfig, error)
	GetOrganizationDefault(ctx context.Context, tx *gorm.DB, organizationID uuid.UUID) (*types.ThresholdConfig, error)
	// GetEmployeeOverrides returns every override row whose validity range
	// contains asOf. Deciding what more than one match means is the
	// resolver's job, not the repo's.
	GetEmployeeOverrides(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, asOf time.Time) ([]*types.ThresholdConfig, error)
	Create(ctx context.Context, tx *gorm.DB, config *types.ThresholdConfig) error
	ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*types.ThresholdConfig, error)
}

type thresholdConfigRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThresholdConfigRepo(db *gorm.DB, baseLog *logger.Logger) ThresholdConfigRepo {
	return &thresholdConfigRepo{
		db:  db,
		log: baseLog.With("repo", "ThresholdConfigRepo"),
	}
}

func (r *thresholdConfigRepo) GetSystemDefault(ctx context.Context, tx *gorm.DB) (*types.ThresholdConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.ThresholdConfig
	err := transaction.WithContext(ctx).
		Where("organization_id IS NULL AND employee_id IS NULL").
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

func (r *thresholdConfigRepo) GetOrganizationDefault(ctx context.Context, tx *gorm.DB, organizationID uuid.UUID) (*types.ThresholdConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if organizationID == uuid.Nil {
		return nil, nil
	}
	var row types.ThresholdConfig
	err := transaction.WithContext(ctx).
		Where("organization_id = ? AND employee_id IS NULL", organizationID).
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

func (r *thresholdConfigRepo) GetEmployeeOverrides(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, asOf time.Time) ([]*types.ThresholdConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.ThresholdConfig
	err := transaction.WithContext(ctx).
		Where("employee_id = ? AND starts_at <= ? AND (ends_at IS NULL OR ends_at > ?)", employeeID, asOf, asOf).
		Order("starts_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *thresholdConfigRepo) Create(ctx context.Context, tx *gorm.DB, config *types.ThresholdConfig) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if config == nil {
		return nil
	}
	if config.ID == uuid.Nil {
		config.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(config).Error
}

func (r *thresholdConfigRepo) ListByEmployee(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) ([]*types.ThresholdConfig, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.ThresholdConfig
	err := transaction.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("starts_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
