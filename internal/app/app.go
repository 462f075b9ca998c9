package app

import (
	"fmt"

	"github.com/fitstack/macrotracker/internal/config"
	"github.com/fitstack/macrotracker/internal/db"
	"github.com/fitstack/macrotracker/internal/model"
	"github.com/fitstack/macrotracker/internal/repository"
	"github.com/fitstack/macrotracker/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg     *config.Config
	DB      *sqlx.DB
	Tracker *service.TrackerService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &App{
		Cfg:     cfg,
		DB:      database,
		Tracker: NewTracker(cfg, database),
	}, nil
}

// NewTracker wires the repositories and caches for an open database.
func NewTracker(cfg *config.Config, database *sqlx.DB) *service.TrackerService {
	// Repositories
	productRepository := repository.NewProductRepository(database)
	dailyLogRepository := repository.NewDailyLogRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	return service.NewTrackerService(
		productRepository,
		dailyLogRepository,
		goalRepository,
		service.TrackerOptions{
			ProductCacheTTL: cfg.ProductCacheTTL,
			GoalCacheTTL:    cfg.GoalCacheTTL,
			MaxLogQuantity:  cfg.MaxLogQuantity,
			DefaultGoals: model.GoalSet{
				Calories: cfg.DefaultCalories,
				Protein:  cfg.DefaultProtein,
				Carbs:    cfg.DefaultCarbs,
				Fat:      cfg.DefaultFat,
			},
		},
	)
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
