package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPlanningHorizonWeeks = 8
	defaultRecommendationLimit  = 5
	minSecretKeyLength          = 32
)

var insecureSecretKeys = map[string]bool{
	"change_me_in_production":                    true,
	"replace_with_at_least_32_random_characters": true,
}

type Config struct {
	Port                 string
	DBPath               string
	SecretKey            string
	Location             *time.Location
	LogLevel             string
	PlanningHorizonWeeks int
	RecommendationLimit  int
}

// Load reads .env when present and then the process environment. Invalid
// values for required settings are errors; tuning knobs fall back to defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secretKey, err := resolveSecretKey()
	if err != nil {
		return nil, err
	}
	port, err := resolvePort()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:                 port,
		DBPath:               DBPath(),
		SecretKey:            secretKey,
		Location:             resolveLocation(getEnv("TZ", "UTC")),
		LogLevel:             getEnv("LOG_LEVEL", "warn"),
		PlanningHorizonWeeks: getPositiveInt("PLANNING_HORIZON_WEEKS", defaultPlanningHorizonWeeks),
		RecommendationLimit:  getPositiveInt("RECOMMENDATION_LIMIT", defaultRecommendationLimit),
	}, nil
}

// DBPath is shared with CLI commands that only need the database.
func DBPath() string {
	return getEnv("DB_PATH", filepath.Join("data", "pantrycycle.db"))
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if insecureSecretKeys[secret] {
		return "", errors.New("SECRET_KEY uses an insecure placeholder value")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	return raw, nil
}

func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getPositiveInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Printf("invalid %s %q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
