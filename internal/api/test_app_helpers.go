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

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/db"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	database := openTestDatabase(t, filepath.Join(t.TempDir(), "healthmetric-test.db"))
	return newTestAppOnDatabase(t, database), database
}

func openTestDatabase(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(databasePath)
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
	return database
}

// newTestAppOnDatabase builds a fresh app over an already opened database,
// which lets tests simulate a process restart against the same file.
func newTestAppOnDatabase(t *testing.T, database *gorm.DB) *fiber.App {
	t.Helper()

	handler, err := NewHandler(db.NewBlobRepository(database), time.UTC)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func readBody(t *testing.T, response *http.Response) string {
	t.Helper()
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(raw)
}

func computePayload(heightCM float64, weightKG float64) map[string]any {
	return map[string]any{
		"height_cm":      heightCM,
		"weight_kg":      weightKG,
		"age_years":      30,
		"sex":            "female",
		"activity_level": "moderate",
	}
}

func saveTestRecord(t *testing.T, app *fiber.App, heightCM float64, weightKG float64) {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/records", computePayload(heightCM, weightKG))
	defer response.Body.Close()
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected record save status 201, got %d", response.StatusCode)
	}
}
