package advisory

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Sharmela-S/Farm-AI/soil"
)

// FertilizerTiming splits the nitrogen dose over the season.
type FertilizerTiming struct {
	Basal     string `json:"basal"`
	FirstTop  string `json:"first_top"`
	SecondTop string `json:"second_top"`
}

// Fertilizer is a per-hectare fertilizer plan.
type Fertilizer struct {
	Nitrogen   string           `json:"nitrogen"`
	Phosphorus string           `json:"phosphorus"`
	Potassium  string           `json:"potassium"`
	Organic    string           `json:"organic"`
	Timing     FertilizerTiming `json:"timing"`
}

var splitTiming = FertilizerTiming{
	Basal:     "50% at sowing",
	FirstTop:  "25% at 30 days",
	SecondTop: "25% at 60 days",
}

// FertilizerPlan returns the NPK dose and application schedule for crop.
// The soil label does not change the dose today.
func FertilizerPlan(_ soil.Label, crop string) Fertilizer {
	v := npkFor(crop)
	return Fertilizer{
		Nitrogen:   fmt.Sprintf("%d kg/ha", v.N),
		Phosphorus: fmt.Sprintf("%d kg/ha", v.P),
		Potassium:  fmt.Sprintf("%d kg/ha", v.K),
		Organic:    "Apply 10 tons/ha of farmyard manure",
		Timing:     splitTiming,
	}
}

// FertilizerTotal is the fertilizer quantity for a whole field.
type FertilizerTotal struct {
	Nitrogen   string `json:"nitrogen"`
	Phosphorus string `json:"phosphorus"`
	Potassium  string `json:"potassium"`
	Organic    string `json:"organic"`
}

// FertilizerRequirement scales the per-hectare dose for crop to areaHectares.
func FertilizerRequirement(crop string, areaHectares float64) FertilizerTotal {
	v := npkFor(crop)
	return FertilizerTotal{
		Nitrogen:   formatQty(float64(v.N)*areaHectares) + " kg",
		Phosphorus: formatQty(float64(v.P)*areaHectares) + " kg",
		Potassium:  formatQty(float64(v.K)*areaHectares) + " kg",
		Organic:    formatQty(10*areaHectares) + " tons of farmyard manure",
	}
}

func formatQty(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// Irrigation is the watering advice for a crop on a soil.
type Irrigation struct {
	Frequency        string   `json:"frequency"`
	Method           string   `json:"method"`
	WaterRequirement string   `json:"water_requirement"`
	CriticalStages   []string `json:"critical_stages"`
}

// IrrigationPlan combines the soil's watering interval with the crop's
// preferred method and seasonal water need.
func IrrigationPlan(label soil.Label, crop string) Irrigation {
	stages := make([]string, len(criticalStages))
	copy(stages, criticalStages)
	return Irrigation{
		Frequency:        IrrigationFrequency(label),
		Method:           IrrigationMethod(crop),
		WaterRequirement: fmt.Sprintf("%.0f mm per season", WaterRequirement(crop, label)),
		CriticalStages:   stages,
	}
}

// IrrigationFrequency returns how often a soil needs watering.
func IrrigationFrequency(label soil.Label) string {
	if f, ok := irrigationFrequency[label]; ok {
		return f
	}
	return defaultIrrigationFrequency
}

// IrrigationMethod returns the recommended delivery method for crop.
func IrrigationMethod(crop string) string {
	switch BaseCropName(crop) {
	case "Cotton", "Groundnut", "Vegetables":
		return "Drip Irrigation (90% efficiency)"
	case "Wheat", "Maize":
		return "Sprinkler Irrigation (75% efficiency)"
	case "Rice":
		return "Flood Irrigation (40% efficiency)"
	default:
		return "Drip or Sprinkler Irrigation"
	}
}

// WaterRequirement returns the seasonal water need in mm for crop grown on
// label, rounded to two decimals.
func WaterRequirement(crop string, label soil.Label) float64 {
	base, ok := waterNeeds[BaseCropName(crop)]
	if !ok {
		base = defaultWaterNeed
	}
	mult, ok := soilWaterMultiplier[label]
	if !ok {
		mult = 1.0
	}
	return math.Round(base*mult*100) / 100
}

// Tips returns general advice, plus warnings for dry, wet or hot conditions.
// Rainfall below 600 mm and above 1500 mm are mutually exclusive.
func Tips(label soil.Label, temperature, rainfall float64) []string {
	tips := []string{
		fmt.Sprintf("Your %s is suitable for multiple crops", strings.ToLower(string(label))),
		"Consider crop rotation to maintain soil fertility",
		"Monitor weather forecasts regularly for better planning",
	}

	if rainfall < 600 {
		tips = append(tips, DroughtTip)
	} else if rainfall > 1500 {
		tips = append(tips, DrainageTip)
	}

	if temperature > 35 {
		tips = append(tips, HeatTip)
	}
	return tips
}

const (
	DroughtTip  = "Low rainfall detected - consider drought-resistant crops"
	DrainageTip = "High rainfall area - ensure proper drainage"
	HeatTip     = "High temperature - provide shade and adequate irrigation"
)
