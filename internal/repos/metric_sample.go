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

type MetricSampleRepo interface {
	GetByEmployeeAndRange(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, from, to time.Time) ([]*types.MetricSample, error)
	UpsertDay(ctx context.Context, tx *gorm.DB, sample *types.MetricSample) error
}

type metricSampleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMetricSampleRepo(db *gorm.DB, baseLog *logger.Logger) MetricSampleRepo {
	return &metricSampleRepo{
		db:  db,
		log: baseLog.With("repo", "MetricSampleRepo"),
	}
}

func (r *metricSampleRepo) GetByEmployeeAndRange(ctx context.Context, tx *gorm.DB, employeeID uuid.UUID, from, to time.Time) ([]*types.MetricSample, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if employeeID == uuid.Nil {
		return nil, nil
	}
	var rows []*types.MetricSample
	err := transaction.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, from, to).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// metric columns merged on conflict; a present value is never replaced by null
var metricSampleMergeColumns = []string{
	"resting_heart_rate",
	"avg_heart_rate",
	"heart_rate_var",
	"sleep_hours",
	"deep_sleep_hours",
	"rem_sleep_hours",
	"steps",
	"exercise_minutes",
	"health_source",
	"hours_worked",
	"overtime_hours",
	"meeting_count",
	"meeting_hours",
	"focus_hours",
	"task_completion_rate",
	"emails_sent",
	"work_source",
}

func (r *metricSampleRepo) UpsertDay(ctx context.Context, tx *gorm.DB, sample *types.MetricSample) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if sample == nil || sample.EmployeeID == uuid.Nil {
		return nil
	}
	if sample.ID == uuid.Nil {
		sample.ID = uuid.New()
	}

	assignments := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	for _, col := range metricSampleMergeColumns {
		assignments[col] = gorm.Expr("COALESCE(EXCLUDED." + col + ", metric_sample." + col + ")")
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(sample).Error
}
