package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/apierr"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/repos"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

// ScoreCacheInvalidator is the slice of the redis client the write paths
// need. Nil disables invalidation.
type ScoreCacheInvalidator interface {
	Invalidate(ctx context.Context, employeeID uuid.UUID) error
}

// EmployeeDataService owns every employee-managed scoring input: daily
// metrics, check-ins, preferences, life events, consent and threshold
// overrides. Each write invalidates the employee's cached scores.
type EmployeeDataService interface {
	RecordCheckin(ctx context.Context, checkin *types.Checkin) error
	UpsertMetrics(ctx context.Context, sample *types.MetricSample) error

	GetPreferences(ctx context.Context, employeeID uuid.UUID) (*types.PersonalPreferences, error)
	UpdatePreferences(ctx context.Context, prefs *types.PersonalPreferences) error

	ListLifeEvents(ctx context.Context, employeeID uuid.UUID) ([]*types.LifeEvent, error)
	CreateLifeEvent(ctx context.Context, event *types.LifeEvent) error
	EndLifeEvent(ctx context.Context, employeeID, eventID uuid.UUID, endsAt time.Time) error

	GetConsent(ctx context.Context, employeeID uuid.UUID) (*types.ScoringConsent, error)
	UpdateConsent(ctx context.Context, consent *types.ScoringConsent) error

	ListThresholdOverrides(ctx context.Context, employeeID uuid.UUID) ([]*types.ThresholdConfig, error)
	CreateThresholdOverride(ctx context.Context, config *types.ThresholdConfig) error
}

type employeeDataService struct {
	db            *gorm.DB
	log           *logger.Logger
	cache         ScoreCacheInvalidator
	employeeRepo  repos.EmployeeRepo
	metricRepo    repos.MetricSampleRepo
	checkinRepo   repos.CheckinRepo
	prefsRepo     repos.PreferencesRepo
	lifeEventRepo repos.LifeEventRepo
	consentRepo   repos.ScoringConsentRepo
	thresholdRepo repos.ThresholdConfigRepo
}

func NewEmployeeDataService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cache ScoreCacheInvalidator,
	employeeRepo repos.EmployeeRepo,
	metricRepo repos.MetricSampleRepo,
	checkinRepo repos.CheckinRepo,
	prefsRepo repos.PreferencesRepo,
	lifeEventRepo repos.LifeEventRepo,
	consentRepo repos.ScoringConsentRepo,
	thresholdRepo repos.ThresholdConfigRepo,
) EmployeeDataService {
	return &employeeDataService{
		db:            db,
		log:           baseLog.With("service", "EmployeeDataService"),
		cache:         cache,
		employeeRepo:  employeeRepo,
		metricRepo:    metricRepo,
		checkinRepo:   checkinRepo,
		prefsRepo:     prefsRepo,
		lifeEventRepo: lifeEventRepo,
		consentRepo:   consentRepo,
		thresholdRepo: thresholdRepo,
	}
}

func (s *employeeDataService) requireEmployee(ctx context.Context, employeeID uuid.UUID) error {
	if employeeID == uuid.Nil {
		return apierr.New(http.StatusBadRequest, "invalid_employee_id", fmt.Errorf("missing employee id"))
	}
	employee, err := s.employeeRepo.GetByID(ctx, nil, employeeID)
	if err != nil {
		return fmt.Errorf("load employee: %w", err)
	}
	if employee == nil {
		return apierr.New(http.StatusNotFound, "employee_not_found", fmt.Errorf("employee %s not found", employeeID))
	}
	return nil
}

func (s *employeeDataService) invalidate(ctx context.Context, employeeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, employeeID); err != nil {
		s.log.Warn("score cache invalidation failed", "employee_id", employeeID, "error", err)
	}
}

func (s *employeeDataService) RecordCheckin(ctx context.Context, checkin *types.Checkin) error {
	if checkin == nil {
		return apierr.New(http.StatusBadRequest, "invalid_checkin", fmt.Errorf("missing check-in body"))
	}
	if err := s.requireEmployee(ctx, checkin.EmployeeID); err != nil {
		return err
	}
	for _, v := range []int{checkin.OverallFeeling, checkin.EnergyLevel, checkin.StressLevel, checkin.Motivation} {
		if v < 1 || v > 5 {
			return apierr.New(http.StatusBadRequest, "invalid_checkin", fmt.Errorf("check-in ordinals must be 1-5, got %d", v))
		}
	}
	if err := s.checkinRepo.Create(ctx, nil, checkin); err != nil {
		return fmt.Errorf("create check-in: %w", err)
	}
	s.invalidate(ctx, checkin.EmployeeID)
	return nil
}

func (s *employeeDataService) UpsertMetrics(ctx context.Context, sample *types.MetricSample) error {
	if sample == nil {
		return apierr.New(http.StatusBadRequest, "invalid_metrics", fmt.Errorf("missing metrics body"))
	}
	if sample.Date.IsZero() {
		return apierr.New(http.StatusBadRequest, "invalid_metrics", fmt.Errorf("missing sample date"))
	}
	if err := s.requireEmployee(ctx, sample.EmployeeID); err != nil {
		return err
	}
	if err := s.metricRepo.UpsertDay(ctx, nil, sample); err != nil {
		return fmt.Errorf("upsert metrics: %w", err)
	}
	s.invalidate(ctx, sample.EmployeeID)
	return nil
}

func (s *employeeDataService) GetPreferences(ctx context.Context, employeeID uuid.UUID) (*types.PersonalPreferences, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.prefsRepo.GetByEmployeeID(ctx, nil, employeeID)
}

func (s *employeeDataService) UpdatePreferences(ctx context.Context, prefs *types.PersonalPreferences) error {
	if prefs == nil {
		return apierr.New(http.StatusBadRequest, "invalid_preferences", fmt.Errorf("missing preferences body"))
	}
	if err := s.requireEmployee(ctx, prefs.EmployeeID); err != nil {
		return err
	}
	if err := s.prefsRepo.Upsert(ctx, nil, prefs); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	s.invalidate(ctx, prefs.EmployeeID)
	return nil
}

func (s *employeeDataService) ListLifeEvents(ctx context.Context, employeeID uuid.UUID) ([]*types.LifeEvent, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.lifeEventRepo.ListByEmployee(ctx, nil, employeeID)
}

func (s *employeeDataService) CreateLifeEvent(ctx context.Context, event *types.LifeEvent) error {
	if event == nil {
		return apierr.New(http.StatusBadRequest, "invalid_life_event", fmt.Errorf("missing life event body"))
	}
	if event.Label == "" || event.StartsAt.IsZero() {
		return apierr.New(http.StatusBadRequest, "invalid_life_event", fmt.Errorf("life event requires label and start date"))
	}
	if err := s.requireEmployee(ctx, event.EmployeeID); err != nil {
		return err
	}
	if err := s.lifeEventRepo.Create(ctx, nil, event); err != nil {
		return fmt.Errorf("create life event: %w", err)
	}
	s.invalidate(ctx, event.EmployeeID)
	return nil
}

func (s *employeeDataService) EndLifeEvent(ctx context.Context, employeeID, eventID uuid.UUID, endsAt time.Time) error {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return err
	}
	if eventID == uuid.Nil {
		return apierr.New(http.StatusBadRequest, "invalid_life_event", fmt.Errorf("missing life event id"))
	}
	if err := s.lifeEventRepo.End(ctx, nil, eventID, endsAt); err != nil {
		return fmt.Errorf("end life event: %w", err)
	}
	s.invalidate(ctx, employeeID)
	return nil
}

func (s *employeeDataService) GetConsent(ctx context.Context, employeeID uuid.UUID) (*types.ScoringConsent, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	consent, err := s.consentRepo.GetByEmployeeID(ctx, nil, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load consent: %w", err)
	}
	if consent == nil {
		// No stored row means full consent; hand back the default so the
		// caller sees the effective state.
		consent = types.FullConsent(employeeID)
	}
	return consent, nil
}

func (s *employeeDataService) UpdateConsent(ctx context.Context, consent *types.ScoringConsent) error {
	if consent == nil {
		return apierr.New(http.StatusBadRequest, "invalid_consent", fmt.Errorf("missing consent body"))
	}
	if err := s.requireEmployee(ctx, consent.EmployeeID); err != nil {
		return err
	}
	if err := s.consentRepo.Upsert(ctx, nil, consent); err != nil {
		return fmt.Errorf("upsert consent: %w", err)
	}
	s.invalidate(ctx, consent.EmployeeID)
	return nil
}

func (s *employeeDataService) ListThresholdOverrides(ctx context.Context, employeeID uuid.UUID) ([]*types.ThresholdConfig, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.thresholdRepo.ListByEmployee(ctx, nil, employeeID)
}

func (s *employeeDataService) CreateThresholdOverride(ctx context.Context, config *types.ThresholdConfig) error {
	if config == nil {
		return apierr.New(http.StatusBadRequest, "invalid_threshold", fmt.Errorf("missing threshold body"))
	}
	if config.EmployeeID == nil || *config.EmployeeID == uuid.Nil {
		return apierr.New(http.StatusBadRequest, "invalid_threshold", fmt.Errorf("override requires an employee id"))
	}
	if err := s.requireEmployee(ctx, *config.EmployeeID); err != nil {
		return err
	}
	if config.BurnoutRedThreshold <= 0 || config.BurnoutRedThreshold > 100 ||
		config.ReadinessGreenThreshold <= 0 || config.ReadinessGreenThreshold > 100 {
		return apierr.New(http.StatusBadRequest, "invalid_threshold", fmt.Errorf("cutoffs must be in (0, 100]"))
	}
	if err := s.thresholdRepo.Create(ctx, nil, config); err != nil {
		return fmt.Errorf("create threshold override: %w", err)
	}
	s.invalidate(ctx, *config.EmployeeID)
	return nil
}
