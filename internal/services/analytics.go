package services

import (
	"math"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

const (
	analyticsMinRecords  = 2
	progressWindowSize   = 5
	defaultProgressScore = 50
)

// Analytics summarizes the saved history: mean BMI, net change between the
// newest and oldest retained records, and the recent-trend progress score.
type Analytics struct {
	AverageBMI    float64 `json:"average_bmi"`
	NetChange     float64 `json:"net_change"`
	ProgressScore int     `json:"progress_score"`
}

// ComputeAnalytics derives summary statistics from a newest-first record
// list. Fewer than two records is a PreconditionError.
func ComputeAnalytics(records []models.Record) (Analytics, error) {
	if len(records) < analyticsMinRecords {
		return Analytics{}, &PreconditionError{Reason: "insufficient data: analytics needs at least 2 records"}
	}

	sum := 0.0
	for _, record := range records {
		sum += record.BMI
	}

	return Analytics{
		AverageBMI:    roundToDecimal(sum / float64(len(records))),
		NetChange:     roundToDecimal(records[0].BMI - records[len(records)-1].BMI),
		ProgressScore: progressScore(records),
	}, nil
}

// progressScore rewards recent downward BMI trend only: among the five
// newest records it counts adjacent-pair decreases and converts the ratio
// to a percentage. It is a directional heuristic, not a statistic.
func progressScore(records []models.Record) int {
	if len(records) < progressWindowSize {
		return defaultProgressScore
	}

	recent := records[:progressWindowSize]
	improvements := 0
	for i := 1; i < len(recent); i++ {
		if recent[i].BMI < recent[i-1].BMI {
			improvements++
		}
	}
	return int(math.Round(float64(improvements) / float64(progressWindowSize-1) * 100))
}
