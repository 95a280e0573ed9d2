package models

import "time"

// Record is one saved snapshot of a past computation. Records are immutable
// after creation; they only disappear through eviction or a full clear.
type Record struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	HeightCM  float64   `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	AgeYears  int       `json:"age_years"`
	Sex       string    `json:"sex"`
	BMI       float64   `json:"bmi"`
	Category  string    `json:"category"`
}
