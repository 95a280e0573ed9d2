package services

import (
	"math"

	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// ActivityMultipliers maps activity levels to their TDEE multiplier. The
// table is the single source of truth for valid activity levels.
var ActivityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// EnergyEstimate is the daily energy picture for a profile: basal metabolic
// rate and total daily energy expenditure, both in kcal.
type EnergyEstimate struct {
	BMR  int `json:"bmr_kcal"`
	TDEE int `json:"tdee_kcal"`
}

// EstimateEnergy computes BMR via Mifflin-St Jeor and scales it by the
// activity multiplier. Inputs are assumed to have passed BMI validation;
// age and sex are checked here because the formula needs them.
func EstimateEnergy(profile models.Profile) (EnergyEstimate, error) {
	fields := make([]string, 0, 2)
	if profile.AgeYears <= 0 || profile.AgeYears > models.MaxAgeYears {
		fields = append(fields, "age_years")
	}
	if profile.Sex != models.SexMale && profile.Sex != models.SexFemale {
		fields = append(fields, "sex")
	}
	if len(fields) > 0 {
		return EnergyEstimate{}, &ValidationError{Fields: fields}
	}

	multiplier, ok := ActivityMultipliers[profile.Activity]
	if !ok {
		return EnergyEstimate{}, &ConfigurationError{Table: "activity multipliers", Key: profile.Activity}
	}

	bmr := 10*profile.WeightKG + 6.25*profile.HeightCM - 5*float64(profile.AgeYears)
	if profile.Sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return EnergyEstimate{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(bmr * multiplier)),
	}, nil
}
