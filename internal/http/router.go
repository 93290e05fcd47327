package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/wellpulse/wellpulse-backend/internal/http/handlers"
	httpMW "github.com/wellpulse/wellpulse-backend/internal/http/middleware"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	ScoreHandler        *httpH.ScoreHandler
	CheckinHandler      *httpH.CheckinHandler
	MetricsHandler      *httpH.MetricsHandler
	PreferencesHandler  *httpH.PreferencesHandler
	LifeEventHandler    *httpH.LifeEventHandler
	ConsentHandler      *httpH.ConsentHandler
	ThresholdHandler    *httpH.ThresholdHandler
	OrganizationHandler *httpH.OrganizationHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Employee scoring
		if cfg.ScoreHandler != nil {
			api.GET("/employees/:id/score", cfg.ScoreHandler.GetScore)
			api.GET("/employees/:id/explanation", cfg.ScoreHandler.GetExplanation)
		}

		// Check-ins
		if cfg.CheckinHandler != nil {
			api.POST("/employees/:id/checkins", cfg.CheckinHandler.CreateCheckin)
		}

		// Daily metrics
		if cfg.MetricsHandler != nil {
			api.PUT("/employees/:id/metrics/:date", cfg.MetricsHandler.UpsertMetrics)
		}

		// Preferences
		if cfg.PreferencesHandler != nil {
			api.GET("/employees/:id/preferences", cfg.PreferencesHandler.GetPreferences)
			api.PUT("/employees/:id/preferences", cfg.PreferencesHandler.UpdatePreferences)
		}

		// Life events
		if cfg.LifeEventHandler != nil {
			api.GET("/employees/:id/life-events", cfg.LifeEventHandler.ListLifeEvents)
			api.POST("/employees/:id/life-events", cfg.LifeEventHandler.CreateLifeEvent)
			api.POST("/employees/:id/life-events/:eventId/end", cfg.LifeEventHandler.EndLifeEvent)
		}

		// Consent
		if cfg.ConsentHandler != nil {
			api.GET("/employees/:id/consent", cfg.ConsentHandler.GetConsent)
			api.PUT("/employees/:id/consent", cfg.ConsentHandler.UpdateConsent)
		}

		// Threshold overrides
		if cfg.ThresholdHandler != nil {
			api.GET("/employees/:id/thresholds", cfg.ThresholdHandler.ListThresholds)
			api.POST("/employees/:id/thresholds", cfg.ThresholdHandler.CreateThreshold)
		}

		// Organization batch recompute
		if cfg.OrganizationHandler != nil {
			api.POST("/organizations/:id/recompute", cfg.OrganizationHandler.Recompute)
		}
	}

	return r
}
