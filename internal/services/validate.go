package services

import (
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// ValidateProfile checks the full measurement input in one pass, collecting
// every offending field rather than failing fast.
func ValidateProfile(profile models.Profile) error {
	fields := make([]string, 0, 5)

	if !isFinitePositive(profile.HeightCM) || profile.HeightCM > models.MaxHeightCM {
		fields = append(fields, "height_cm")
	}
	if !isFinitePositive(profile.WeightKG) || profile.WeightKG > models.MaxWeightKG {
		fields = append(fields, "weight_kg")
	}
	if profile.AgeYears <= 0 || profile.AgeYears > models.MaxAgeYears {
		fields = append(fields, "age_years")
	}
	if profile.Sex != models.SexMale && profile.Sex != models.SexFemale {
		fields = append(fields, "sex")
	}
	if _, ok := ActivityMultipliers[profile.Activity]; !ok {
		fields = append(fields, "activity_level")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
