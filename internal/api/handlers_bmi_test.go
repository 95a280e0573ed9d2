package api

import (
	"net/http"
	"testing"
)

func TestComputeBMIEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/bmi", computePayload(170, 70))
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	body := decodeJSONBody(t, response)
	bmi, ok := body["bmi"].(map[string]any)
	if !ok {
		t.Fatalf("missing bmi object in %v", body)
	}
	if bmi["value"] != 24.2 {
		t.Fatalf("expected BMI 24.2, got %v", bmi["value"])
	}
	category, ok := bmi["category"].(map[string]any)
	if !ok || category["key"] != "healthy" {
		t.Fatalf("expected healthy category, got %v", bmi["category"])
	}

	ring, ok := body["ring"].(map[string]any)
	if !ok {
		t.Fatalf("missing ring object in %v", body)
	}
	if ring["class"] != "healthy" || ring["color"] != "#32CD32" {
		t.Fatalf("unexpected ring %v", ring)
	}

	guidance, ok := body["guidance"].(map[string]any)
	if !ok || guidance["heading"] != "Weight Maintenance Guidelines" {
		t.Fatalf("unexpected guidance %v", body["guidance"])
	}

	energy, ok := body["energy"].(map[string]any)
	if !ok || energy["bmr_kcal"] == nil || energy["tdee_kcal"] == nil {
		t.Fatalf("unexpected energy %v", body["energy"])
	}
}

func TestComputeBMIEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	payload := computePayload(0, 0)
	response := performJSON(t, app, http.MethodPost, "/api/bmi", payload)
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}

	body := decodeJSONBody(t, response)
	fields, ok := body["fields"].([]any)
	if !ok {
		t.Fatalf("expected fields array, got %v", body)
	}
	if len(fields) != 2 {
		t.Fatalf("expected height_cm and weight_kg reported, got %v", fields)
	}
}

func TestComputeBMIEndpointImperialInput(t *testing.T) {
	app, _ := newTestApp(t)

	payload := computePayload(67, 154)
	payload["unit_system"] = "imperial"

	response := performJSON(t, app, http.MethodPost, "/api/bmi", payload)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	body := decodeJSONBody(t, response)
	bmi, ok := body["bmi"].(map[string]any)
	if !ok {
		t.Fatalf("missing bmi object in %v", body)
	}
	if bmi["value"] != 24.1 {
		t.Fatalf("expected converted BMI 24.1, got %v", bmi["value"])
	}
}

func TestComputeBMIEndpointNormalizesInputSpelling(t *testing.T) {
	app, _ := newTestApp(t)

	payload := computePayload(170, 70)
	payload["sex"] = " Female "
	payload["activity_level"] = "Very-Active"

	response := performJSON(t, app, http.MethodPost, "/api/bmi", payload)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected normalized input accepted, got %d", response.StatusCode)
	}
	decodeJSONBody(t, response)
}

func TestShareMessageEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("requires a prior computation", func(t *testing.T) {
		response := performJSON(t, app, http.MethodGet, "/api/share", nil)
		if response.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", response.StatusCode)
		}
		decodeJSONBody(t, response)
	})

	t.Run("returns canonical message after compute", func(t *testing.T) {
		compute := performJSON(t, app, http.MethodPost, "/api/bmi", computePayload(170, 70))
		if compute.StatusCode != http.StatusOK {
			t.Fatalf("compute failed with %d", compute.StatusCode)
		}
		compute.Body.Close()

		response := performJSON(t, app, http.MethodGet, "/api/share", nil)
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", response.StatusCode)
		}
		body := decodeJSONBody(t, response)
		if body["message"] != "My HealthMetric Pro Results: BMI 24.2 - Healthy Weight" {
			t.Fatalf("unexpected share message %v", body["message"])
		}
		if body["bmi"] != 24.2 || body["category"] != "Healthy Weight" {
			t.Fatalf("unexpected share body %v", body)
		}
	})
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodGet, "/healthz", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	if body["status"] != "ok" {
		t.Fatalf("unexpected health body %v", body)
	}
}
