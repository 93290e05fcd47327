package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wellpulse/wellpulse-backend/internal/db"
	"github.com/wellpulse/wellpulse-backend/internal/logger"
	"github.com/wellpulse/wellpulse-backend/internal/types"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	clients := wireClients(log, cfg)
	reposet := wireRepos(theDB, log)

	if err := seedSystemDefault(reposet, log); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed system threshold default: %w", err)
	}

	serviceset := wireServices(theDB, log, reposet, clients)
	handlerset := wireHandlers(log, serviceset)
	router := wireRouter(log, handlerset)

	return &App{
		Log:      log,
		DB:       theDB,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Clients:  clients,
	}, nil
}

// seedSystemDefault guarantees the one configuration every computation
// requires: a system-level threshold row. Without it, every score request
// fails with a configuration error.
func seedSystemDefault(reposet Repos, log *logger.Logger) error {
	ctx := context.Background()
	existing, err := reposet.ThresholdConfig.GetSystemDefault(ctx, nil)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	log.Info("No system threshold default found, seeding one")
	return reposet.ThresholdConfig.Create(ctx, nil, &types.ThresholdConfig{
		BurnoutRedThreshold:          70,
		ReadinessGreenThreshold:      65,
		InteractionHighThreshold:     8,
		InteractionCriticalThreshold: 12,
		ThresholdType:                types.ThresholdTypeAbsolute,
		EnableInteractionEffects:     true,
		EnableWeekendAdjustment:      true,
	})
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(a.Cfg.Address)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Clients.ScoreCache != nil {
		_ = a.Clients.ScoreCache.Close()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
