// Package advisory resolves the static fertilizer, irrigation and crop
// economics tables for a classified soil and its top crop.
package advisory

import (
	"strings"

	"github.com/Sharmela-S/Farm-AI/soil"
)

// BaseCropName strips a parenthesised alias: "Bajra (Pearl Millet)" → "Bajra".
func BaseCropName(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// npk is a per-hectare nutrient requirement in kg.
type npk struct {
	N, P, K int
}

var npkPerHectare = map[string]npk{
	"Rice":      {N: 120, P: 60, K: 40},
	"Wheat":     {N: 120, P: 60, K: 40},
	"Cotton":    {N: 150, P: 75, K: 75},
	"Maize":     {N: 120, P: 60, K: 40},
	"Sugarcane": {N: 250, P: 115, K: 115},
}

var defaultNPK = npk{N: 100, P: 50, K: 50}

func npkFor(crop string) npk {
	if v, ok := npkPerHectare[BaseCropName(crop)]; ok {
		return v
	}
	return defaultNPK
}

// base water need per season in mm
var waterNeeds = map[string]float64{
	"Rice":      1500,
	"Wheat":     550,
	"Cotton":    900,
	"Maize":     650,
	"Sugarcane": 2000,
	"Groundnut": 600,
}

const defaultWaterNeed = 700

var soilWaterMultiplier = map[soil.Label]float64{
	soil.Sandy: 1.3,
	soil.Clay:  0.9,
	soil.Loamy: 1.0,
	soil.Silty: 1.1,
}

var irrigationFrequency = map[soil.Label]string{
	soil.Sandy: "Every 5-7 days",
	soil.Clay:  "Every 10-15 days",
	soil.Loamy: "Every 7-10 days",
	soil.Silty: "Every 8-12 days",
}

const defaultIrrigationFrequency = "Every 7-10 days"

var criticalStages = []string{
	"Germination/Establishment",
	"Vegetative Growth",
	"Flowering Stage",
	"Grain Filling/Maturity",
}

var varieties = map[string][]string{
	"Rice":      {"IR64", "Basmati", "Sona Masuri", "Swarna", "Pusa Basmati"},
	"Wheat":     {"HD2967", "PBW343", "WH1105", "Lok1", "Sharbati"},
	"Cotton":    {"Bt Cotton", "Hybrid-6", "Suraj", "MCU5", "Bunny Hybrid"},
	"Maize":     {"DHM121", "HQPM1", "Vivek Hybrid", "Sweet Corn", "DHM-117"},
	"Sugarcane": {"Co86032", "Co0238", "CoJ88", "Co419", "CoLk-8102"},
	"Groundnut": {"TMV-2", "JL-24", "TAG-24", "Kadiri-6", "Kadiri-9"},
	"Soybean":   {"JS-335", "JS-9305", "MACS-450", "Pusa-16"},
	"Bajra":     {"HHB-67", "Pusa-322", "RHB-121", "GHB-558"},
	"Jowar":     {"CSH-16", "Maldandi", "CSV-15", "Pusa-9"},
	"Ragi":      {"GPU-28", "ML-365", "VL-149", "PR-202"},
}

var defaultVarieties = []string{"Local Variety", "Hybrid Variety", "Improved Variety"}

// Varieties returns recommended seed varieties for crop.
func Varieties(crop string) []string {
	v, ok := varieties[BaseCropName(crop)]
	if !ok {
		v = defaultVarieties
	}
	out := make([]string, len(v))
	copy(out, v)
	return out
}
