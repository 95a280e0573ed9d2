package services

import "fmt"

// BuildShareMessage is the canonical one-line result text handed to the
// platform share or clipboard facility.
func BuildShareMessage(bmiValue float64, category string) string {
	return fmt.Sprintf("My HealthMetric Pro Results: BMI %.1f - %s", bmiValue, category)
}
