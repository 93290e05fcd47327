package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/apierr"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/modules/scoring"
	"github.com/wellpulse/wellpulse-backend/internal/repos"
)

// Viewer roles accepted by the explanation endpoint. Employees see their own
// full detail; managers and HR see the leadership view with raw health
// readings stripped.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
)

type ScoreService interface {
	// ComputeScore assembles the employee's trailing window and runs the
	// scoring pipeline. Pure read; safe to call concurrently.
	ComputeScore(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.ScoreResult, error)
	// Explain returns the score plus recommendations shaped for viewerRole.
	// includeRaw requests unredacted health readings; only the employee
	// role is entitled to them.
	Explain(ctx context.Context, employeeID uuid.UUID, date time.Time, viewerRole string, includeRaw bool) (*scoring.ScoreResult, *scoring.Explanation, error)
}

// ScoreResultCache is the slice of the redis client the score service needs.
// Nil is a valid value and disables caching.
type ScoreResultCache interface {
	Get(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.ScoreResult, bool, error)
	Set(ctx context.Context, result *scoring.ScoreResult) error
}

type scoreService struct {
	db            *gorm.DB
	log           *logger.Logger
	cache         ScoreResultCache
	employeeRepo  repos.EmployeeRepo
	metricRepo    repos.MetricSampleRepo
	checkinRepo   repos.CheckinRepo
	prefsRepo     repos.PreferencesRepo
	lifeEventRepo repos.LifeEventRepo
	consentRepo   repos.ScoringConsentRepo
	thresholdRepo repos.ThresholdConfigRepo
}

func NewScoreService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cache ScoreResultCache,
	employeeRepo repos.EmployeeRepo,
	metricRepo repos.MetricSampleRepo,
	checkinRepo repos.CheckinRepo,
	prefsRepo repos.PreferencesRepo,
	lifeEventRepo repos.LifeEventRepo,
	consentRepo repos.ScoringConsentRepo,
	thresholdRepo repos.ThresholdConfigRepo,
) ScoreService {
	return &scoreService{
		db:            db,
		log:           baseLog.With("service", "ScoreService"),
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

func (s *scoreService) ComputeScore(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.ScoreResult, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, employeeID, date)
		if err != nil {
			s.log.Warn("score cache read failed", "employee_id", employeeID, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	snap, err := s.buildSnapshot(ctx, employeeID, date)
	if err != nil {
		return nil, err
	}
	result, err := scoring.ComputeScore(*snap)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, result); err != nil {
			s.log.Warn("score cache write failed", "employee_id", employeeID, "error", err)
		}
	}
	return result, nil
}

func (s *scoreService) Explain(ctx context.Context, employeeID uuid.UUID, date time.Time, viewerRole string, includeRaw bool) (*scoring.ScoreResult, *scoring.Explanation, error) {
	role := strings.ToLower(strings.TrimSpace(viewerRole))
	switch role {
	case RoleEmployee, RoleManager, RoleHR:
	default:
		return nil, nil, apierr.New(http.StatusBadRequest, "invalid_role", fmt.Errorf("unknown viewer role %q", viewerRole))
	}
	if includeRaw && role != RoleEmployee {
		return nil, nil, &scoring.ConsentViolationError{Role: role}
	}

	// The explanation path always recomputes: the cached wire form drops
	// factor categories, which redaction needs.
	snap, err := s.buildSnapshot(ctx, employeeID, date)
	if err != nil {
		return nil, nil, err
	}
	result, exp, err := scoring.Explain(*snap)
	if err != nil {
		return nil, nil, err
	}

	if role != RoleEmployee {
		redactForLeadership(result, exp)
	}
	return result, exp, nil
}

// redactForLeadership strips everything a manager or HR viewer is not
// entitled to: personal recommendations and raw health readings. The factor
// names stay so leadership can see what drives the zone without seeing the
// underlying measurements.
func redactForLeadership(result *scoring.ScoreResult, exp *scoring.Explanation) {
	exp.Recommendations.Personal = nil
	for i := range exp.Factors {
		if exp.Factors[i].Category == scoring.CategoryHealth {
			exp.Factors[i].Value = "redacted"
		}
	}
	for i := range result.Factors {
		if result.Factors[i].Category == scoring.CategoryHealth {
			result.Factors[i].Value = "redacted"
		}
	}
}

// buildSnapshot performs the single consistent read behind a computation:
// employee, trailing metric window, check-ins, preferences, active life
// events, consent and the three threshold layers.
func (s *scoreService) buildSnapshot(ctx context.Context, employeeID uuid.UUID, date time.Time) (*scoring.Snapshot, error) {
	if employeeID == uuid.Nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_employee_id", fmt.Errorf("missing employee id"))
	}
	if date.IsZero() {
		return nil, apierr.New(http.StatusBadRequest, "invalid_date", fmt.Errorf("missing date"))
	}

	employee, err := s.employeeRepo.GetByID(ctx, nil, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee: %w", err)
	}
	if employee == nil {
		return nil, apierr.New(http.StatusNotFound, "employee_not_found", fmt.Errorf("employee %s not found", employeeID))
	}

	day := date.Truncate(24 * time.Hour)
	from := day.AddDate(0, 0, -(scoring.DefaultWindowDays - 1))

	samples, err := s.metricRepo.GetByEmployeeAndRange(ctx, nil, employeeID, from, day)
	if err != nil {
		return nil, fmt.Errorf("load metric window: %w", err)
	}
	checkins, err := s.checkinRepo.GetByEmployeeAndRange(ctx, nil, employeeID, from, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}
	prefs, err := s.prefsRepo.GetByEmployeeID(ctx, nil, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	lifeEvents, err := s.lifeEventRepo.GetActive(ctx, nil, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("load life events: %w", err)
	}
	consent, err := s.consentRepo.GetByEmployeeID(ctx, nil, employeeID)
	if err != nil {
		return nil, fmt.Errorf("load consent: %w", err)
	}

	systemDefault, err := s.thresholdRepo.GetSystemDefault(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load system threshold default: %w", err)
	}
	snap := &scoring.Snapshot{
		EmployeeID:    employeeID,
		Date:          day,
		Samples:       samples,
		Checkins:      checkins,
		Preferences:   prefs,
		LifeEvents:    lifeEvents,
		Consent:       consent,
		SystemDefault: systemDefault,
	}
	if employee.OrganizationID != nil {
		snap.OrganizationID = employee.OrganizationID
		org, err := s.thresholdRepo.GetOrganizationDefault(ctx, nil, *employee.OrganizationID)
		if err != nil {
			return nil, fmt.Errorf("load organization threshold default: %w", err)
		}
		snap.OrgDefault = org
	}
	overrides, err := s.thresholdRepo.GetEmployeeOverrides(ctx, nil, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("load threshold overrides: %w", err)
	}
	snap.Overrides = overrides

	return snap, nil
}
