package config

import (
	"testing"
	"time"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestResolveSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY is empty")
	}

	t.Setenv("SECRET_KEY", "change_me_in_production")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY uses insecure placeholder")
	}

	t.Setenv("SECRET_KEY", "too-short-secret")
	if _, err := resolveSecretKey(); err == nil {
		t.Fatal("expected error when SECRET_KEY is too short")
	}

	t.Setenv("SECRET_KEY", validSecret)
	secret, err := resolveSecretKey()
	if err != nil {
		t.Fatalf("expected valid secret, got error: %v", err)
	}
	if secret != validSecret {
		t.Fatalf("expected %q, got %q", validSecret, secret)
	}
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	if err != nil || port != "8080" {
		t.Fatalf("expected default port 8080, got %q (err=%v)", port, err)
	}

	t.Setenv("PORT", "9090")
	port, err = resolvePort()
	if err != nil || port != "9090" {
		t.Fatalf("expected port 9090, got %q (err=%v)", port, err)
	}

	for _, invalid := range []string{"0", "70000", "not-a-number"} {
		t.Setenv("PORT", invalid)
		if _, err := resolvePort(); err == nil {
			t.Fatalf("expected PORT %q to fail", invalid)
		}
	}
}

func TestLoadAppliesDefaultsAndOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SECRET_KEY", validSecret)
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("TZ", "Europe/Berlin")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PLANNING_HORIZON_WEEKS", "12")
	t.Setenv("RECOMMENDATION_LIMIT", "-3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.DBPath != "data/pantrycycle.db" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.PlanningHorizonWeeks != 12 {
		t.Fatalf("expected horizon 12, got %d", cfg.PlanningHorizonWeeks)
	}
	if cfg.RecommendationLimit != defaultRecommendationLimit {
		t.Fatalf("expected invalid limit to fall back to %d, got %d", defaultRecommendationLimit, cfg.RecommendationLimit)
	}
	if cfg.Location.String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", cfg.Location)
	}
}

func TestResolveLocationFallsBackToUTC(t *testing.T) {
	if got := resolveLocation("Mars/Olympus_Mons"); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %s", got)
	}
}
