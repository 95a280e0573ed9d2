package services

import "math"

const (
	CategoryUnderweight = "underweight"
	CategoryHealthy     = "healthy"
	CategoryOverweight  = "overweight"
	CategoryObese1      = "obese1"
	CategoryObese2      = "obese2"
	CategoryObese3      = "obese3"
)

// CategoryBand is one row of the six-band category table used by the
// summary panel: band key, half-open BMI range, status label, risk level,
// display color and a short description.
type CategoryBand struct {
	Key         string  `json:"key"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Status      string  `json:"status"`
	Risk        string  `json:"risk"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

// categoryBands mirrors the international six-band BMI table. Bands are
// contiguous, inclusive-lower and exclusive-upper; the last one is open.
var categoryBands = []CategoryBand{
	{Key: CategoryUnderweight, Min: 0, Max: 18.5, Status: "Underweight", Risk: "Moderate", Color: "#4682B4", Description: "May indicate nutritional deficiency or other health issues"},
	{Key: CategoryHealthy, Min: 18.5, Max: 25, Status: "Healthy Weight", Risk: "Low", Color: "#32CD32", Description: "Associated with lowest health risks"},
	{Key: CategoryOverweight, Min: 25, Max: 30, Status: "Overweight", Risk: "Increased", Color: "#FFA500", Description: "May increase risk of health conditions"},
	{Key: CategoryObese1, Min: 30, Max: 35, Status: "Obese Class I", Risk: "High", Color: "#FF6347", Description: "Significantly increased health risks"},
	{Key: CategoryObese2, Min: 35, Max: 40, Status: "Obese Class II", Risk: "Very High", Color: "#DC143C", Description: "Substantial health risk increase"},
	{Key: CategoryObese3, Min: 40, Max: math.Inf(1), Status: "Obese Class III", Risk: "Extremely High", Color: "#8B0000", Description: "Severe health risk category"},
}

func CategoryForBMI(bmi float64) CategoryBand {
	for _, band := range categoryBands[:len(categoryBands)-1] {
		if bmi >= band.Min && bmi < band.Max {
			return band
		}
	}
	return categoryBands[len(categoryBands)-1]
}

func CategoryBands() []CategoryBand {
	bands := make([]CategoryBand, len(categoryBands))
	copy(bands, categoryBands)
	return bands
}

// NarrativeBand is one row of the seven-band narrative classification used
// by the detail panel. It is deliberately finer than the category table
// (it splits underweight at 16) and the two tables stay separate because
// their consumers use different granularity.
type NarrativeBand struct {
	Min         float64 `json:"min"`
	Category    string  `json:"category"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

var narrativeBands = []NarrativeBand{
	{Min: 0, Category: "Severely Underweight", Status: "High Risk", Description: "Your BMI indicates severe underweight. Professional medical consultation is strongly recommended."},
	{Min: 16, Category: "Underweight", Status: "Moderate Risk", Description: "You may be underweight. Consider nutritional assessment and healthcare consultation."},
	{Min: 18.5, Category: "Healthy Weight", Status: "Optimal", Description: "Your weight is within the healthy range. Maintain your balanced lifestyle and regular activity."},
	{Min: 25, Category: "Overweight", Status: "Increased Risk", Description: "You may be overweight. Consider lifestyle modifications for improved health outcomes."},
	{Min: 30, Category: "Obese (Class I)", Status: "High Risk", Description: "Your BMI indicates obesity. Healthcare professional consultation is recommended."},
	{Min: 35, Category: "Obese (Class II)", Status: "Very High Risk", Description: "Your BMI indicates severe obesity. Comprehensive medical assessment is advised."},
	{Min: 40, Category: "Obese (Class III)", Status: "Extreme Risk", Description: "Your BMI indicates very severe obesity. Immediate medical consultation is essential."},
}

func NarrativeForBMI(bmi float64) NarrativeBand {
	selected := narrativeBands[0]
	for _, band := range narrativeBands {
		if bmi >= band.Min {
			selected = band
		}
	}
	return selected
}

// macroBand is the coarse three-way split the recommendation generator
// keys on. It intentionally disagrees with the finer tables above.
func macroBand(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryHealthy
	default:
		return CategoryOverweight
	}
}

const ringMaxBMI = 40.0

// RingFraction maps the unrounded BMI onto the progress ring scale.
func RingFraction(exactBMI float64) float64 {
	if exactBMI <= 0 {
		return 0
	}
	return math.Min(exactBMI/ringMaxBMI, 1)
}

// RingClass is the four-way color class of the progress ring, coarser than
// the category table because the ring merges the obese classes.
func RingClass(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryHealthy
	case bmi < 30:
		return CategoryOverweight
	default:
		return "obese"
	}
}

var ringColors = map[string]string{
	CategoryUnderweight: "#4682B4",
	CategoryHealthy:     "#32CD32",
	CategoryOverweight:  "#FFA500",
	"obese":             "#DC143C",
}

func RingColor(class string) string {
	if color, ok := ringColors[class]; ok {
		return color
	}
	return ringColors[CategoryHealthy]
}
