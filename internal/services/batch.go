package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/apierr"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/modules/scoring"
	"github.com/wellpulse/wellpulse-backend/internal/repos"
	"github.com/wellpulse/wellpulse-backend/internal/utils"
)

// BatchResult is one organization-wide recompute. A failed employee never
// aborts the batch; failures are collected per employee instead.
type BatchResult struct {
	OrganizationID uuid.UUID                  `json:"organizationId"`
	Date           time.Time                  `json:"date"`
	Results        []*scoring.ScoreResult     `json:"results"`
	Failures       map[uuid.UUID]string       `json:"failures,omitempty"`
}

type BatchService interface {
	RecomputeOrganization(ctx context.Context, organizationID uuid.UUID, date time.Time) (*BatchResult, error)
}

type batchService struct {
	db           *gorm.DB
	log          *logger.Logger
	employeeRepo repos.EmployeeRepo
	scoreService ScoreService
	concurrency  int
}

func NewBatchService(
	db *gorm.DB,
	baseLog *logger.Logger,
	employeeRepo repos.EmployeeRepo,
	scoreService ScoreService,
) BatchService {
	return &batchService{
		db:           db,
		log:          baseLog.With("service", "BatchService"),
		employeeRepo: employeeRepo,
		scoreService: scoreService,
		concurrency:  utils.GetEnvAsInt("BATCH_CONCURRENCY", 8, baseLog),
	}
}

func (s *batchService) RecomputeOrganization(ctx context.Context, organizationID uuid.UUID, date time.Time) (*BatchResult, error) {
	if organizationID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_organization_id", fmt.Errorf("missing organization id"))
	}
	employees, err := s.employeeRepo.ListByOrganization(ctx, nil, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	out := &BatchResult{
		OrganizationID: organizationID,
		Date:           date,
		Failures:       map[uuid.UUID]string{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, emp := range employees {
		employeeID := emp.ID
		g.Go(func() error {
			result, err := s.scoreService.ComputeScore(gctx, employeeID, date)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn("employee recompute failed", "employee_id", employeeID, "error", err)
				out.Failures[employeeID] = err.Error()
				return nil
			}
			out.Results = append(out.Results, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Info("organization recompute finished",
		"organization_id", organizationID,
		"scored", len(out.Results),
		"failed", len(out.Failures),
	)
	if len(out.Failures) == 0 {
		out.Failures = nil
	}
	return out, nil
}
