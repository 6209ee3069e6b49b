package api

import (
	"errors"
	"time"

	"github.com/terraincognita07/pantrycycle/internal/db"
	"github.com/terraincognita07/pantrycycle/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, cfg HandlerConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("secret key is required")
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}
	clock := cfg.Clock
	if clock == nil {
		clock = services.SystemClock{Location: location}
	}

	repositories := db.NewRepositories(database)
	periods := services.NewPeriodService(repositories.Periods, location)
	schedule := services.NewScheduleService(repositories.Profiles, periods, repositories.Recipes, clock).
		WithPlanningHorizon(cfg.PlanningHorizonWeeks).
		WithRecommendationLimit(cfg.RecommendationLimit)

	return &Handler{
		secretKey: []byte(cfg.SecretKey),
		location:  location,
		periods:   periods,
		schedule:  schedule,
		recipes:   repositories.Recipes,
	}, nil
}
