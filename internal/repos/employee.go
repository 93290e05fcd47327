package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type EmployeeRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.Employee, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, organizationID uuid.UUID) ([]*types.Employee, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	return &employeeRepo{
		db:  db,
		log: baseLog.With("repo", "EmployeeRepo"),
	}
}

func (r *employeeRepo) GetByID(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID) (*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var row types.Employee
	err := transaction.WithContext(ctx).
		Where("id = ?", employeeID).
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

func (r *employeeRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, organizationID uuid.UUID) ([]*types.Employee, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if organizationID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.Employee
	err := transaction.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
