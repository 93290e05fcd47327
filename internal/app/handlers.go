package app

import (
	httpH "github.com/wellpulse/wellpulse-backend/internal/http/handlers"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
)

type Handlers struct {
	Score        *httpH.ScoreHandler
	Checkin      *httpH.CheckinHandler
	Metrics      *httpH.MetricsHandler
	Preferences  *httpH.PreferencesHandler
	LifeEvent    *httpH.LifeEventHandler
	Consent      *httpH.ConsentHandler
	Threshold    *httpH.ThresholdHandler
	Organization *httpH.OrganizationHandler
	Health       *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Score:        httpH.NewScoreHandler(serviceset.Score),
		Checkin:      httpH.NewCheckinHandler(serviceset.EmployeeData),
		Metrics:      httpH.NewMetricsHandler(serviceset.EmployeeData),
		Preferences:  httpH.NewPreferencesHandler(serviceset.EmployeeData),
		LifeEvent:    httpH.NewLifeEventHandler(serviceset.EmployeeData),
		Consent:      httpH.NewConsentHandler(serviceset.EmployeeData),
		Threshold:    httpH.NewThresholdHandler(serviceset.EmployeeData),
		Organization: httpH.NewOrganizationHandler(serviceset.Batch),
		Health:       httpH.NewHealthHandler(),
	}
}
