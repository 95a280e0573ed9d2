package services

import (
	"math"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

const (
	idealWeightMinBMI = 18.5
	idealWeightMaxBMI = 24.9
)

// IdealWeightRange is the healthy weight window for a given height.
// WithinRange means the current BMI already falls in the healthy band and
// no explicit window is reported.
type IdealWeightRange struct {
	WithinRange bool    `json:"within_range"`
	MinKG       float64 `json:"min_kg,omitempty"`
	MaxKG       float64 `json:"max_kg,omitempty"`
}

// BMIResult carries both taxonomies for one computation. Value is rounded
// to one decimal for display; Exact keeps the unrounded quotient so ring
// and progress consumers do not compound rounding error.
type BMIResult struct {
	Value       float64          `json:"value"`
	Exact       float64          `json:"-"`
	Category    CategoryBand     `json:"category"`
	Narrative   NarrativeBand    `json:"narrative"`
	IdealWeight IdealWeightRange `json:"ideal_weight"`
}

// ComputeBMI turns height and weight into a classified BMI result.
// Out-of-range inputs are collected into a single ValidationError naming
// every offending field.
func ComputeBMI(heightCM float64, weightKG float64) (BMIResult, error) {
	fields := make([]string, 0, 2)
	if !isFinitePositive(heightCM) || heightCM > models.MaxHeightCM {
		fields = append(fields, "height_cm")
	}
	if !isFinitePositive(weightKG) || weightKG > models.MaxWeightKG {
		fields = append(fields, "weight_kg")
	}
	if len(fields) > 0 {
		return BMIResult{}, &ValidationError{Fields: fields}
	}

	heightM := heightCM / 100
	exact := weightKG / (heightM * heightM)
	value := roundToDecimal(exact)

	return BMIResult{
		Value:       value,
		Exact:       exact,
		Category:    CategoryForBMI(value),
		Narrative:   NarrativeForBMI(value),
		IdealWeight: idealWeightForBMI(value, heightCM),
	}, nil
}

// IdealWeightRangeForHeight returns the (18.5, 24.9) BMI weight window for
// a height, each bound rounded to one decimal.
func IdealWeightRangeForHeight(heightCM float64) (float64, float64) {
	heightM := heightCM / 100
	minKG := roundToDecimal(idealWeightMinBMI * heightM * heightM)
	maxKG := roundToDecimal(idealWeightMaxBMI * heightM * heightM)
	return minKG, maxKG
}

func idealWeightForBMI(bmi float64, heightCM float64) IdealWeightRange {
	if CategoryForBMI(bmi).Key == CategoryHealthy {
		return IdealWeightRange{WithinRange: true}
	}
	minKG, maxKG := IdealWeightRangeForHeight(heightCM)
	return IdealWeightRange{MinKG: minKG, MaxKG: maxKG}
}

func isFinitePositive(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value > 0
}

func roundToDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}
