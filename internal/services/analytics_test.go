package services

import (
	"errors"
	"testing"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// recordsWithBMIs builds a newest-first record list from the given BMI
// sequence, newest value first.
func recordsWithBMIs(t *testing.T, bmis ...float64) []models.Record {
	t.Helper()
	records := make([]models.Record, 0, len(bmis))
	for i, bmi := range bmis {
		records = append(records, makeRecord(t, int64(len(bmis)-i), bmi))
	}
	return records
}

func TestComputeAnalyticsTwoRecords(t *testing.T) {
	analytics, err := ComputeAnalytics(recordsWithBMIs(t, 22, 23))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if analytics.AverageBMI != 22.5 {
		t.Fatalf("expected average 22.5, got %v", analytics.AverageBMI)
	}
	if analytics.NetChange != -1.0 {
		t.Fatalf("expected net change -1.0, got %v", analytics.NetChange)
	}
	if analytics.ProgressScore != defaultProgressScore {
		t.Fatalf("expected default progress score %d under five records, got %d", defaultProgressScore, analytics.ProgressScore)
	}
}

func TestComputeAnalyticsInsufficientData(t *testing.T) {
	_, err := ComputeAnalytics(recordsWithBMIs(t, 22))
	var preconditionErr *PreconditionError
	if !errors.As(err, &preconditionErr) {
		t.Fatalf("expected PreconditionError, got %v", err)
	}

	if _, err := ComputeAnalytics(nil); err == nil {
		t.Fatal("expected error for empty history")
	}
}

func TestProgressScoreWindow(t *testing.T) {
	cases := []struct {
		name     string
		bmis     []float64
		expected int
	}{
		{"one qualifying pair among four", []float64{20, 21, 19, 22, 23}, 25},
		{"every pair qualifies", []float64{24, 23, 22, 21, 20}, 100},
		{"no pair qualifies", []float64{20, 21, 22, 23, 24}, 0},
		{"window ignores older records", []float64{24, 23, 22, 21, 20, 10, 10, 10}, 100},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			analytics, err := ComputeAnalytics(recordsWithBMIs(t, testCase.bmis...))
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
			if analytics.ProgressScore != testCase.expected {
				t.Fatalf("expected score %d, got %d", testCase.expected, analytics.ProgressScore)
			}
		})
	}
}

func TestComputeAnalyticsNetChangeUsesRetainedEndpoints(t *testing.T) {
	analytics, err := ComputeAnalytics(recordsWithBMIs(t, 25.4, 24, 23, 22.1))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if analytics.NetChange != 3.3 {
		t.Fatalf("expected net change 3.3, got %v", analytics.NetChange)
	}
}
