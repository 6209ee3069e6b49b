package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/pantrycycle/internal/models"
	"github.com/terraincognita07/pantrycycle/internal/services"
)

const (
	authCookieName   = "pantrycycle_auth"
	contextUserIDKey = "user_id"
)

type recipeLookup interface {
	FindByID(id uint) (models.Recipe, error)
}

type Handler struct {
	secretKey []byte
	location  *time.Location
	periods   *services.PeriodService
	schedule  *services.ScheduleService
	recipes   recipeLookup
}

// HandlerConfig carries the settings NewHandler needs beyond the database.
type HandlerConfig struct {
	SecretKey            string
	Location             *time.Location
	Clock                services.Clock
	PlanningHorizonWeeks int
	RecommendationLimit  int
}

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
