package models

import "time"

const (
	GoalLose     = "lose"
	GoalGain     = "gain"
	GoalMaintain = "maintain"
)

// Goal is the single active weight target. Saving a new goal fully
// overwrites the previous one; no goal history is kept.
type Goal struct {
	Type           string    `json:"type"`
	TargetWeightKG float64   `json:"target_weight_kg"`
	TargetDate     string    `json:"target_date"`
	StartWeightKG  float64   `json:"start_weight_kg"`
	StartDate      time.Time `json:"start_date"`
}
