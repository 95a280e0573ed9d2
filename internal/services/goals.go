package services

import (
	"math"
	"strings"
	"time"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

const (
	goalDateLayout       = "2006-01-02"
	goalDefaultSpanMonth = 3
	goalWeightStepKG     = 5.0
)

// SuggestGoalTarget proposes a target weight for a goal type from the
// current weight and height.
//
// The lose floor subtracts 100 from the height in centimeters and treats
// the result as kilograms, exactly as the source behavior does. It is kept
// for fidelity; see DESIGN.md for the likely intended BMI-based floor.
func SuggestGoalTarget(goalType string, currentWeightKG float64, currentHeightCM float64) (float64, error) {
	switch goalType {
	case models.GoalLose:
		return roundToDecimal(math.Max(currentWeightKG-goalWeightStepKG, currentHeightCM-100)), nil
	case models.GoalGain:
		return roundToDecimal(currentWeightKG + goalWeightStepKG), nil
	case models.GoalMaintain:
		return roundToDecimal(currentWeightKG), nil
	default:
		return 0, newValidationError("goal_type")
	}
}

// DefaultTargetDate is three months out from now.
func DefaultTargetDate(now time.Time) string {
	return now.AddDate(0, goalDefaultSpanMonth, 0).Format(goalDateLayout)
}

// ValidateGoal requires goal type, target weight and a parseable target
// date, reporting every missing or malformed field at once.
func ValidateGoal(goal models.Goal) error {
	fields := make([]string, 0, 3)

	switch goal.Type {
	case models.GoalLose, models.GoalGain, models.GoalMaintain:
	default:
		fields = append(fields, "goal_type")
	}

	if goal.TargetWeightKG <= 0 || goal.TargetWeightKG > models.MaxWeightKG {
		fields = append(fields, "target_weight_kg")
	}

	if strings.TrimSpace(goal.TargetDate) == "" {
		fields = append(fields, "target_date")
	} else if _, err := time.Parse(goalDateLayout, goal.TargetDate); err != nil {
		fields = append(fields, "target_date")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// BuildGoal assembles the single active goal from validated input, stamping
// the baseline weight and start date.
func BuildGoal(goalType string, targetWeightKG float64, targetDate string, startWeightKG float64, now time.Time) (models.Goal, error) {
	goal := models.Goal{
		Type:           goalType,
		TargetWeightKG: targetWeightKG,
		TargetDate:     targetDate,
		StartWeightKG:  startWeightKG,
		StartDate:      now,
	}
	if err := ValidateGoal(goal); err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}
