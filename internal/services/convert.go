package services

import (
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

const (
	kgPerPound = 0.45359237
	cmPerInch  = 2.54
)

func KilogramsFromPounds(pounds float64) float64 {
	return pounds * kgPerPound
}

func PoundsFromKilograms(kilograms float64) float64 {
	return kilograms / kgPerPound
}

func CentimetersFromInches(inches float64) float64 {
	return inches * cmPerInch
}

func InchesFromCentimeters(centimeters float64) float64 {
	return centimeters / cmPerInch
}

// ProfileToMetric converts an imperial-entered profile (height in inches,
// weight in pounds) to the metric units the engine works in. Metric input
// passes through unchanged, as does any unrecognized unit system.
func ProfileToMetric(profile models.Profile, unitSystem string) models.Profile {
	if unitSystem != models.UnitImperial {
		return profile
	}
	profile.HeightCM = CentimetersFromInches(profile.HeightCM)
	profile.WeightKG = KilogramsFromPounds(profile.WeightKG)
	return profile
}
