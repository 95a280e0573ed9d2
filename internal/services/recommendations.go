package services

import (
	"github.com/ICHTAG/Body-Mass-Index-Result-Analysis/internal/models"
)

// GuidanceItem is one labelled line of a guidance block.
type GuidanceItem struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Guidance is structured recommendation content. Rendering it to any
// presentation format is a UI concern.
type Guidance struct {
	Heading     string         `json:"heading"`
	Items       []GuidanceItem `json:"items"`
	AgeNote     string         `json:"age_note,omitempty"`
	SexNote     string         `json:"sex_note,omitempty"`
	ActivityTip string         `json:"activity_tip"`
}

type guidanceBlock struct {
	Heading string
	Items   []GuidanceItem
}

// guidanceBlocks keys on the coarse three-way macro band, not the six-band
// category table. The mismatch is inherited behavior and stays as is.
var guidanceBlocks = map[string]guidanceBlock{
	CategoryUnderweight: {
		Heading: "Healthy Weight Gain Strategy",
		Items: []GuidanceItem{
			{Label: "Nutrition", Text: "Increase calorie intake with nutrient-dense foods"},
			{Label: "Protein", Text: "Consume 1.2-1.6g protein per kg of body weight daily"},
			{Label: "Exercise", Text: "Strength training 3x weekly to build muscle mass"},
			{Label: "Monitoring", Text: "Regular weight tracking and medical follow-up"},
		},
	},
	CategoryHealthy: {
		Heading: "Weight Maintenance Guidelines",
		Items: []GuidanceItem{
			{Label: "Nutrition", Text: "Balanced diet with variety of food groups"},
			{Label: "Activity", Text: "150-300 minutes moderate exercise weekly"},
			{Label: "Hydration", Text: "2-3 liters of water daily"},
			{Label: "Prevention", Text: "Regular health screenings and check-ups"},
		},
	},
	CategoryOverweight: {
		Heading: "Sustainable Weight Management",
		Items: []GuidanceItem{
			{Label: "Nutrition", Text: "Create 500-calorie daily deficit for gradual loss"},
			{Label: "Exercise", Text: "Combine cardio and strength training"},
			{Label: "Behavior", Text: "Mindful eating and portion control strategies"},
			{Label: "Support", Text: "Consider professional guidance and support systems"},
		},
	},
}

const (
	youngAdultNote    = "Young Adults: Focus on establishing sustainable eating patterns."
	overFortyNote     = "Adults 40+: Include resistance training for muscle preservation."
	womensHealthNote  = "Women's Health: Ensure adequate iron and calcium intake."
	youngAdultAgeMax  = 25
	overFortyAgeFloor = 40
)

var activityTips = map[string]string{
	models.ActivitySedentary:  "Gradually increase daily movement and reduce sitting time.",
	models.ActivityModerate:   "Maintain current activity level and consider adding variety.",
	models.ActivityActive:     "Excellent activity level - focus on consistency and recovery.",
	models.ActivityVeryActive: "Ensure adequate rest and nutrition to support high activity levels.",
}

// GenerateRecommendations composes the base guidance block for the BMI
// macro band with the conditional age, sex and activity notes. An activity
// level missing from the tip table is a ConfigurationError; the table is
// exhaustive over the enum, so that path should stay unreachable.
func GenerateRecommendations(bmi float64, age int, sex string, activity string) (Guidance, error) {
	band := macroBand(bmi)
	block, ok := guidanceBlocks[band]
	if !ok {
		return Guidance{}, &ConfigurationError{Table: "guidance blocks", Key: band}
	}

	tip, ok := activityTips[activity]
	if !ok {
		return Guidance{}, &ConfigurationError{Table: "activity tips", Key: activity}
	}

	items := make([]GuidanceItem, len(block.Items))
	copy(items, block.Items)

	guidance := Guidance{
		Heading:     block.Heading,
		Items:       items,
		ActivityTip: tip,
	}

	switch band {
	case CategoryUnderweight:
		if age < youngAdultAgeMax {
			guidance.AgeNote = youngAdultNote
		}
	case CategoryHealthy:
		if sex == models.SexFemale {
			guidance.SexNote = womensHealthNote
		}
	case CategoryOverweight:
		if age > overFortyAgeFloor {
			guidance.AgeNote = overFortyNote
		}
	}

	return guidance, nil
}
