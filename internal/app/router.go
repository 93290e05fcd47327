package app

import (
	"github.com/gin-gonic/gin"

	httpserver "github.com/wellpulse/wellpulse-backend/internal/http"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return httpserver.NewRouter(httpserver.RouterConfig{
		Log:                 log,
		ScoreHandler:        handlers.Score,
		CheckinHandler:      handlers.Checkin,
		MetricsHandler:      handlers.Metrics,
		PreferencesHandler:  handlers.Preferences,
		LifeEventHandler:    handlers.LifeEvent,
		ConsentHandler:      handlers.Consent,
		ThresholdHandler:    handlers.Threshold,
		OrganizationHandler: handlers.Organization,
		HealthHandler:       handlers.Health,
	})
}
