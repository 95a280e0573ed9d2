package api

import (
	"net/http"
	"testing"
	"time"
)

func TestSuggestGoalEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/goal/suggest", map[string]any{
		"type":              "lose",
		"current_weight_kg": 80,
		"current_height_cm": 170,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	body := decodeJSONBody(t, response)
	if body["target_weight_kg"] != float64(75) {
		t.Fatalf("expected target 75, got %v", body["target_weight_kg"])
	}
	targetDate, ok := body["target_date"].(string)
	if !ok {
		t.Fatalf("missing target_date in %v", body)
	}
	if _, err := time.Parse("2006-01-02", targetDate); err != nil {
		t.Fatalf("unparseable target date %q: %v", targetDate, err)
	}
}

func TestSuggestGoalEndpointUnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/goal/suggest", map[string]any{
		"type":              "bulk",
		"current_weight_kg": 80,
		"current_height_cm": 170,
	})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	decodeJSONBody(t, response)
}

func TestGoalLifecycle(t *testing.T) {
	app, database := newTestApp(t)

	t.Run("no goal initially", func(t *testing.T) {
		response := performJSON(t, app, http.MethodGet, "/api/goal", nil)
		body := decodeJSONBody(t, response)
		if body["has_goal"] != false {
			t.Fatalf("expected no goal, got %v", body)
		}
	})

	t.Run("save captures baseline from last computation", func(t *testing.T) {
		compute := performJSON(t, app, http.MethodPost, "/api/bmi", computePayload(170, 80))
		if compute.StatusCode != http.StatusOK {
			t.Fatalf("compute failed with %d", compute.StatusCode)
		}
		compute.Body.Close()

		response := performJSON(t, app, http.MethodPost, "/api/goal", map[string]any{
			"type":             "lose",
			"target_weight_kg": 75,
			"target_date":      "2026-11-28",
		})
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", response.StatusCode)
		}
		body := decodeJSONBody(t, response)
		goal, ok := body["goal"].(map[string]any)
		if !ok {
			t.Fatalf("missing goal in %v", body)
		}
		if goal["type"] != "lose" || goal["target_weight_kg"] != float64(75) {
			t.Fatalf("unexpected goal %v", goal)
		}
		if goal["start_weight_kg"] != float64(80) {
			t.Fatalf("expected baseline weight 80, got %v", goal["start_weight_kg"])
		}
	})

	t.Run("get returns the saved goal", func(t *testing.T) {
		response := performJSON(t, app, http.MethodGet, "/api/goal", nil)
		body := decodeJSONBody(t, response)
		if body["has_goal"] != true {
			t.Fatalf("expected saved goal, got %v", body)
		}
	})

	t.Run("goal survives handler reload", func(t *testing.T) {
		reloaded := newTestAppOnDatabase(t, database)
		response := performJSON(t, reloaded, http.MethodGet, "/api/goal", nil)
		body := decodeJSONBody(t, response)
		if body["has_goal"] != true {
			t.Fatalf("expected persisted goal after reload, got %v", body)
		}
	})
}

func TestSaveGoalValidation(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/goal", map[string]any{})
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	fields, ok := body["fields"].([]any)
	if !ok || len(fields) != 3 {
		t.Fatalf("expected all three goal fields reported, got %v", body)
	}
}
