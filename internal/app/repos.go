package app

import (
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/repos"
)

type Repos struct {
	Employee        repos.EmployeeRepo
	MetricSample    repos.MetricSampleRepo
	Checkin         repos.CheckinRepo
	Preferences     repos.PreferencesRepo
	LifeEvent       repos.LifeEventRepo
	ScoringConsent  repos.ScoringConsentRepo
	ThresholdConfig repos.ThresholdConfigRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Employee:        repos.NewEmployeeRepo(db, log),
		MetricSample:    repos.NewMetricSampleRepo(db, log),
		Checkin:         repos.NewCheckinRepo(db, log),
		Preferences:     repos.NewPreferencesRepo(db, log),
		LifeEvent:       repos.NewLifeEventRepo(db, log),
		ScoringConsent:  repos.NewScoringConsentRepo(db, log),
		ThresholdConfig: repos.NewThresholdConfigRepo(db, log),
	}
}
