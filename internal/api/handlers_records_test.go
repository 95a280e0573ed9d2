package api

import (
	"net/http"
	"testing"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/services"
)

func TestSaveAndListRecords(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/records", computePayload(170, 70))
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	record, ok := body["record"].(map[string]any)
	if !ok {
		t.Fatalf("missing record in %v", body)
	}
	if record["bmi"] != 24.2 || record["category"] != "Healthy Weight" {
		t.Fatalf("unexpected record %v", record)
	}
	if record["id"] == nil || record["created_at"] == nil {
		t.Fatalf("expected stamped record, got %v", record)
	}

	list := performJSON(t, app, http.MethodGet, "/api/records", nil)
	if list.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", list.StatusCode)
	}
	listBody := decodeJSONBody(t, list)
	if listBody["count"] != float64(1) {
		t.Fatalf("expected count 1, got %v", listBody["count"])
	}
}

func TestSaveRecordRejectsInvalidInput(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/records", computePayload(0, 70))
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
	decodeJSONBody(t, response)

	list := performJSON(t, app, http.MethodGet, "/api/records", nil)
	if decodeJSONBody(t, list)["count"] != float64(0) {
		t.Fatal("rejected input must not be recorded")
	}
}

func TestRecordsCapEvictsOldest(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < services.HistoryCapacity+1; i++ {
		saveTestRecord(t, app, 170, 60+float64(i))
	}

	list := performJSON(t, app, http.MethodGet, "/api/records", nil)
	body := decodeJSONBody(t, list)
	if body["count"] != float64(services.HistoryCapacity) {
		t.Fatalf("expected count capped at %d, got %v", services.HistoryCapacity, body["count"])
	}

	records, ok := body["records"].([]any)
	if !ok || len(records) != services.HistoryCapacity {
		t.Fatalf("expected %d records, got %v", services.HistoryCapacity, body["records"])
	}

	newest, ok := records[0].(map[string]any)
	if !ok {
		t.Fatalf("unexpected record shape %v", records[0])
	}
	if newest["weight_kg"] != 60+float64(services.HistoryCapacity) {
		t.Fatalf("expected newest record first, got weight %v", newest["weight_kg"])
	}
	for _, raw := range records {
		record := raw.(map[string]any)
		if record["weight_kg"] == float64(60) {
			t.Fatal("expected first saved record to be evicted")
		}
	}
}

func TestClearRecords(t *testing.T) {
	app, _ := newTestApp(t)
	saveTestRecord(t, app, 170, 70)

	response := performJSON(t, app, http.MethodDelete, "/api/records", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if decodeJSONBody(t, response)["ok"] != true {
		t.Fatal("expected ok acknowledgement")
	}

	list := performJSON(t, app, http.MethodGet, "/api/records", nil)
	if decodeJSONBody(t, list)["count"] != float64(0) {
		t.Fatal("expected empty history after clear")
	}
}

func TestRecordsSurviveHandlerReload(t *testing.T) {
	app, database := newTestApp(t)
	saveTestRecord(t, app, 170, 70)
	saveTestRecord(t, app, 170, 71)

	reloaded := newTestAppOnDatabase(t, database)
	list := performJSON(t, reloaded, http.MethodGet, "/api/records", nil)
	body := decodeJSONBody(t, list)
	if body["count"] != float64(2) {
		t.Fatalf("expected reloaded handler to see 2 records, got %v", body["count"])
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	t.Run("insufficient data", func(t *testing.T) {
		response := performJSON(t, app, http.MethodGet, "/api/analytics", nil)
		if response.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", response.StatusCode)
		}
		decodeJSONBody(t, response)
	})

	t.Run("summary over saved records", func(t *testing.T) {
		saveTestRecord(t, app, 170, 66.5) // BMI 23.0
		saveTestRecord(t, app, 170, 63.6) // BMI 22.0

		response := performJSON(t, app, http.MethodGet, "/api/analytics", nil)
		if response.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", response.StatusCode)
		}
		body := decodeJSONBody(t, response)
		if body["average_bmi"] != 22.5 {
			t.Fatalf("expected average 22.5, got %v", body["average_bmi"])
		}
		if body["net_change"] != -1.0 {
			t.Fatalf("expected net change -1, got %v", body["net_change"])
		}
		if body["progress_score"] != float64(50) {
			t.Fatalf("expected default progress score, got %v", body["progress_score"])
		}
	})
}
