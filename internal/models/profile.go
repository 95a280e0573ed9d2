package models

const (
	SexMale   = "male"
	SexFemale = "female"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"
)

const (
	MaxHeightCM = 250.0
	MaxWeightKG = 300.0
	MaxAgeYears = 120
)

// Profile is the measurement input for one computation. It is never
// persisted on its own, only embedded into records and exports.
type Profile struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	AgeYears int     `json:"age_years"`
	Sex      string  `json:"sex"`
	Activity string  `json:"activity_level"`
}
