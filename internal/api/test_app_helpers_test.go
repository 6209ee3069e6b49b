package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pantrycycle/internal/db"
	"github.com/terraincognita07/pantrycycle/internal/models"
	"github.com/terraincognita07/pantrycycle/internal/services"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pantrycycle-api-test.db")
	database, err := db.OpenSQLite(databasePath, "silent")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler, err := NewHandler(database, HandlerConfig{
		SecretKey: testSecretKey,
		Location:  time.UTC,
		Clock:     services.FixedClock{At: time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, database
}

func authHeader(t *testing.T, userID uint) string {
	t.Helper()
	token, err := IssueToken(testSecretKey, userID, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, userID uint, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		request.Header.Set("Authorization", authHeader(t, userID))
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func expectStatus(t *testing.T, response *http.Response, status int) {
	t.Helper()
	if response.StatusCode != status {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", status, response.StatusCode, string(body))
	}
}

func decodeJSON(t *testing.T, body io.Reader, target any) {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %s: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()
	payload := map[string]any{}
	decodeJSON(t, body, &payload)
	message, _ := payload["error"].(string)
	return message
}

func seedPeriod(t *testing.T, app *fiber.App, userID uint, start string, end string) {
	t.Helper()
	response := doJSON(t, app, http.MethodPost, "/api/periods", userID, map[string]string{
		"start_date": start,
		"end_date":   end,
	})
	expectStatus(t, response, http.StatusCreated)
}

func seedRecipe(t *testing.T, database *gorm.DB, recipe models.Recipe) models.Recipe {
	t.Helper()
	if err := db.NewRecipeRepository(database).Create(&recipe); err != nil {
		t.Fatalf("seed recipe %s: %v", recipe.Title, err)
	}
	return recipe
}

type weekResponse struct {
	Week     models.WeekBlock `json:"week"`
	Warnings []string         `json:"warnings"`
}
