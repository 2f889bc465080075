// Package soil classifies a soil photo's color summary into a soil type and
// ranks the crops that suit it.
package soil

// Label is a soil type name as returned to clients.
type Label string

const (
	Sandy       Label = "Sandy Soil"
	Black       Label = "Black Soil (Regur)"
	RedLaterite Label = "Red Laterite Soil"
	Clay        Label = "Clay Soil"
	Loamy       Label = "Loamy Soil"
	Silty       Label = "Silty Soil"
)

// Labels lists every label the classifier can return.
var Labels = []Label{Sandy, Black, RedLaterite, Clay, Loamy, Silty}

// ProfitTier is a coarse profitability bucket for a crop.
type ProfitTier string

const (
	ProfitLow        ProfitTier = "Low"
	ProfitMedium     ProfitTier = "Medium"
	ProfitMediumHigh ProfitTier = "Medium-High"
	ProfitHigh       ProfitTier = "High"
	ProfitVeryHigh   ProfitTier = "Very High"
)

// Crop is one ranked crop candidate.
type Crop struct {
	Name        string     `json:"name"`
	Suitability int        `json:"suitability"`
	Yield       string     `json:"yield"`
	Duration    string     `json:"duration"`
	Profit      ProfitTier `json:"profit"`
}

// Sample is the color evidence the rules look at.
type Sample struct {
	R, G, B    float64
	Brightness float64
	Variance   float64
}

// Climate holds the user-supplied conditions used to nudge suitability.
type Climate struct {
	Temperature float64 // °C
	Rainfall    float64 // mm per year
}

// Result is the outcome of one classification.
type Result struct {
	Label      Label   `json:"soil_type"`
	Confidence float64 `json:"confidence"`
	Crops      []Crop  `json:"recommended_crops"`
}
