package advisory

import "math"

var baseYields = map[string]float64{
	"Rice":      4.5,
	"Wheat":     3.2,
	"Cotton":    2.8,
	"Maize":     3.8,
	"Sugarcane": 70.0,
	"Groundnut": 2.2,
}

const defaultYield = 3.0

// EstimateYield returns the expected yield in tons per hectare, reduced for
// very dry (< 500 mm) or very wet (> 1500 mm) years.
func EstimateYield(crop string, rainfall float64) float64 {
	y, ok := baseYields[BaseCropName(crop)]
	if !ok {
		y = defaultYield
	}
	switch {
	case rainfall < 500:
		y *= 0.8
	case rainfall > 1500:
		y *= 0.9
	}
	return math.Round(y*10) / 10
}

// per hectare, in rupees
var (
	costPerHectare = map[string]float64{
		"Rice":      35000,
		"Wheat":     31000,
		"Cotton":    46000,
		"Maize":     32000,
		"Sugarcane": 80000,
	}
	revenuePerHectare = map[string]float64{
		"Rice":      112500,
		"Wheat":     70400,
		"Cotton":    182000,
		"Maize":     68400,
		"Sugarcane": 240000,
	}
)

const (
	defaultCost    = 35000
	defaultRevenue = 100000
)

// Returns is the investment outlook for a field.
type Returns struct {
	TotalInvestment float64 `json:"total_investment"`
	ExpectedRevenue float64 `json:"expected_revenue"`
	NetProfit       float64 `json:"net_profit"`
	ROIPercentage   float64 `json:"roi_percentage"`
}

// ROI computes investment, revenue and return for areaHectares of crop.
func ROI(crop string, areaHectares float64) Returns {
	name := BaseCropName(crop)
	cost, ok := costPerHectare[name]
	if !ok {
		cost = defaultCost
	}
	revenue, ok := revenuePerHectare[name]
	if !ok {
		revenue = defaultRevenue
	}

	r := Returns{
		TotalInvestment: cost * areaHectares,
		ExpectedRevenue: revenue * areaHectares,
	}
	r.NetProfit = r.ExpectedRevenue - r.TotalInvestment
	if r.TotalInvestment > 0 {
		r.ROIPercentage = math.Round(r.NetProfit/r.TotalInvestment*100*100) / 100
	}
	return r
}
