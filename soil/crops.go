package soil

// Candidate tables per rule. Each table is copied before nudging.
var (
	sandyCrops = []Crop{
		{Name: "Groundnut", Suitability: 90, Yield: "2.2 tons/ha", Duration: "100-130 days", Profit: ProfitHigh},
		{Name: "Bajra (Pearl Millet)", Suitability: 88, Yield: "1.8 tons/ha", Duration: "70-90 days", Profit: ProfitMediumHigh},
		{Name: "Watermelon", Suitability: 85, Yield: "25 tons/ha", Duration: "80-90 days", Profit: ProfitHigh},
	}

	blackCrops = []Crop{
		{Name: "Cotton", Suitability: 95, Yield: "3.2 tons/ha", Duration: "150-180 days", Profit: ProfitVeryHigh},
		{Name: "Soybean", Suitability: 92, Yield: "2.8 tons/ha", Duration: "90-110 days", Profit: ProfitHigh},
		{Name: "Jowar (Sorghum)", Suitability: 89, Yield: "2.5 tons/ha", Duration: "110-130 days", Profit: ProfitMediumHigh},
	}

	redLateriteCrops = []Crop{
		{Name: "Groundnut", Suitability: 91, Yield: "2.4 tons/ha", Duration: "100-130 days", Profit: ProfitHigh},
		{Name: "Ragi (Finger Millet)", Suitability: 89, Yield: "2.0 tons/ha", Duration: "100-120 days", Profit: ProfitMediumHigh},
		{Name: "Cashew", Suitability: 86, Yield: "1.2 tons/ha", Duration: "2-3 years", Profit: ProfitVeryHigh},
	}

	clayCrops = []Crop{
		{Name: "Rice", Suitability: 93, Yield: "4.5 tons/ha", Duration: "120-150 days", Profit: ProfitHigh},
		{Name: "Cotton", Suitability: 90, Yield: "2.8 tons/ha", Duration: "150-180 days", Profit: ProfitVeryHigh},
		{Name: "Wheat", Suitability: 87, Yield: "3.2 tons/ha", Duration: "110-130 days", Profit: ProfitMediumHigh},
	}

	loamyCrops = []Crop{
		{Name: "Rice", Suitability: 95, Yield: "4.8 tons/ha", Duration: "120-150 days", Profit: ProfitHigh},
		{Name: "Wheat", Suitability: 93, Yield: "3.5 tons/ha", Duration: "110-130 days", Profit: ProfitHigh},
		{Name: "Sugarcane", Suitability: 91, Yield: "75 tons/ha", Duration: "12-18 months", Profit: ProfitVeryHigh},
	}

	siltyCrops = []Crop{
		{Name: "Vegetables (Mixed)", Suitability: 92, Yield: "18 tons/ha", Duration: "60-90 days", Profit: ProfitHigh},
		{Name: "Maize", Suitability: 89, Yield: "3.8 tons/ha", Duration: "90-120 days", Profit: ProfitMediumHigh},
		{Name: "Pulses", Suitability: 86, Yield: "1.5 tons/ha", Duration: "90-120 days", Profit: ProfitMedium},
	}

	// used when no rule matches
	fallbackLoamyCrops = []Crop{
		{Name: "Rice", Suitability: 95, Yield: "4.8 tons/ha", Duration: "120-150 days", Profit: ProfitHigh},
		{Name: "Wheat", Suitability: 91, Yield: "3.5 tons/ha", Duration: "110-130 days", Profit: ProfitHigh},
		{Name: "Maize", Suitability: 89, Yield: "4.2 tons/ha", Duration: "90-120 days", Profit: ProfitMediumHigh},
	}
)

const maxSuitability = 98

// nudge raises suitability for crops the climate favours. At most one
// adjustment applies per crop.
func nudge(crops []Crop, c Climate) {
	for i := range crops {
		switch {
		case crops[i].Name == "Rice" && c.Temperature >= 25 && c.Rainfall >= 800:
			crops[i].Suitability = min(maxSuitability, crops[i].Suitability+3)
		case crops[i].Name == "Wheat" && c.Temperature <= 25 && c.Rainfall < 800:
			crops[i].Suitability = min(maxSuitability, crops[i].Suitability+3)
		case crops[i].Name == "Cotton" && c.Temperature >= 25:
			crops[i].Suitability = min(maxSuitability, crops[i].Suitability+2)
		}
	}
}
