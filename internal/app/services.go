package app

import (
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/services"
)

type Services struct {
	Score        services.ScoreService
	EmployeeData services.EmployeeDataService
	Batch        services.BatchService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	var readCache services.ScoreResultCache
	var writeCache services.ScoreCacheInvalidator
	if clients.ScoreCache != nil {
		readCache = clients.ScoreCache
		writeCache = clients.ScoreCache
	}

	score := services.NewScoreService(
		db,
		log,
		readCache,
		reposet.Employee,
		reposet.MetricSample,
		reposet.Checkin,
		reposet.Preferences,
		reposet.LifeEvent,
		reposet.ScoringConsent,
		reposet.ThresholdConfig,
	)
	employeeData := services.NewEmployeeDataService(
		db,
		log,
		writeCache,
		reposet.Employee,
		reposet.MetricSample,
		reposet.Checkin,
		reposet.Preferences,
		reposet.LifeEvent,
		reposet.ScoringConsent,
		reposet.ThresholdConfig,
	)
	batch := services.NewBatchService(db, log, reposet.Employee, score)

	return Services{
		Score:        score,
		EmployeeData: employeeData,
		Batch:        batch,
	}
}
