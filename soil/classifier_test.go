package soil

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(r, g, b, variance float64) Sample {
	return Sample{R: r, G: g, B: b, Brightness: (r + g + b) / 3, Variance: variance}
}

var defaultClimate = Climate{Temperature: 28, Rainfall: 800}

func names(crops []Crop) []string {
	out := make([]string, len(crops))
	for i, c := range crops {
		out[i] = c.Name
	}
	return out
}

func TestClassifyRuleOrder(t *testing.T) {
	tests := []struct {
		name   string
		sample Sample
		want   Label
		crops  []Crop
	}{
		{"sandy", sample(160, 140, 130, 1000), Sandy, sandyCrops},
		{"black ignores variance", sample(60, 60, 60, 5000), Black, blackCrops},
		{"black dark red", sample(100, 70, 60, 100), Black, blackCrops},
		{"red laterite", sample(140, 100, 90, 3000), RedLaterite, redLateriteCrops},
		{"clay", sample(110, 100, 95, 900), Clay, clayCrops},
		{"loamy", sample(130, 125, 120, 600), Loamy, loamyCrops},
		{"silty", sample(140, 135, 130, 300), Silty, siltyCrops},
		{"fallback bright and rough", sample(200, 200, 200, 5000), Loamy, fallbackLoamyCrops},
		{"fallback mid and smooth", sample(100, 100, 100, 200), Loamy, fallbackLoamyCrops},
	}

	c := NewClassifier(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchRule(tt.sample)
			assert.Equal(t, tt.want, got.label)
			assert.Equal(t, names(tt.crops), names(got.crops))

			res := c.Classify(tt.sample, defaultClimate)
			assert.Equal(t, tt.want, res.Label)
			assert.ElementsMatch(t, names(tt.crops), names(res.Crops))
		})
	}
}

func TestOverlappingRangesResolvedByOrder(t *testing.T) {
	// brightness 110, variance 900 satisfies both clay and loamy.
	s := sample(110, 110, 110, 900)
	assert.Equal(t, Clay, matchRule(s).label)

	// brightness 121, variance 900 satisfies both loamy and silty.
	s = sample(121, 121, 121, 900)
	assert.Equal(t, Loamy, matchRule(s).label)
	assert.Equal(t, names(loamyCrops), names(matchRule(s).crops))
}

func TestRedLateriteZeroGreen(t *testing.T) {
	s := Sample{R: 200, G: 0, B: 160, Brightness: 120, Variance: 3000}
	assert.Equal(t, RedLaterite, matchRule(s).label)
}

func TestConfidenceWithinRange(t *testing.T) {
	c := NewClassifier(rand.NewSource(42))
	samples := []Sample{
		sample(160, 140, 130, 1000),
		sample(60, 60, 60, 0),
		sample(140, 100, 90, 3000),
		sample(110, 100, 95, 900),
		sample(130, 125, 120, 600),
		sample(140, 135, 130, 300),
		sample(200, 200, 200, 5000),
	}
	for _, s := range samples {
		r := matchRule(s)
		for i := 0; i < 200; i++ {
			res := c.Classify(s, defaultClimate)
			assert.GreaterOrEqual(t, res.Confidence, r.base)
			assert.LessOrEqual(t, res.Confidence, r.base+r.span)
		}
	}
}

func TestConfidenceDefaultSource(t *testing.T) {
	res := NewClassifier(nil).Classify(sample(60, 60, 60, 0), defaultClimate)
	assert.GreaterOrEqual(t, res.Confidence, 91.0)
	assert.LessOrEqual(t, res.Confidence, 97.0)
}

func TestSandyTopCandidate(t *testing.T) {
	res := NewClassifier(rand.NewSource(7)).Classify(sample(160, 140, 130, 1000), defaultClimate)
	require.Equal(t, Sandy, res.Label)
	assert.Equal(t, "Groundnut", res.Crops[0].Name)
	assert.Equal(t, []string{"Groundnut", "Bajra (Pearl Millet)", "Watermelon"}, names(res.Crops))
}

func TestClimateNudges(t *testing.T) {
	c := NewClassifier(rand.NewSource(3))

	// Clay: Rice 93, Cotton 90, Wheat 87
	warmWet := c.Classify(sample(110, 100, 95, 900), Climate{Temperature: 30, Rainfall: 1200})
	assert.Equal(t, []Crop{
		{Name: "Rice", Suitability: 96, Yield: "4.5 tons/ha", Duration: "120-150 days", Profit: ProfitHigh},
		{Name: "Cotton", Suitability: 92, Yield: "2.8 tons/ha", Duration: "150-180 days", Profit: ProfitVeryHigh},
		{Name: "Wheat", Suitability: 87, Yield: "3.2 tons/ha", Duration: "110-130 days", Profit: ProfitMediumHigh},
	}, warmWet.Crops)

	coolDry := c.Classify(sample(110, 100, 95, 900), Climate{Temperature: 20, Rainfall: 500})
	assert.Equal(t, []string{"Rice", "Cotton", "Wheat"}, names(coolDry.Crops))
	assert.Equal(t, 93, coolDry.Crops[0].Suitability)
	assert.Equal(t, 90, coolDry.Crops[1].Suitability)
	assert.Equal(t, 90, coolDry.Crops[2].Suitability)
}

func TestNudgeTieKeepsTableOrder(t *testing.T) {
	// Clay with Cotton 90 and nudged Wheat 90: cotton precedes wheat in the table.
	res := NewClassifier(rand.NewSource(3)).Classify(sample(110, 100, 95, 900), Climate{Temperature: 22, Rainfall: 600})
	assert.Equal(t, []string{"Rice", "Cotton", "Wheat"}, names(res.Crops))

	// Silty has no nudged crops; the table order survives untouched.
	res = NewClassifier(rand.NewSource(3)).Classify(sample(140, 135, 130, 300), defaultClimate)
	assert.Equal(t, names(siltyCrops), names(res.Crops))
}

func TestSuitabilityCapped(t *testing.T) {
	crops := []Crop{{Name: "Rice", Suitability: 97}, {Name: "Wheat", Suitability: 96}, {Name: "Cotton", Suitability: 98}}
	nudge(crops, Climate{Temperature: 30, Rainfall: 900})
	assert.Equal(t, 98, crops[0].Suitability)
	assert.Equal(t, 96, crops[1].Suitability)
	assert.Equal(t, 98, crops[2].Suitability)

	res := NewClassifier(rand.NewSource(9)).Classify(sample(130, 125, 120, 600), Climate{Temperature: 35, Rainfall: 2000})
	for _, cr := range res.Crops {
		assert.LessOrEqual(t, cr.Suitability, 98)
	}
}

func TestClassifyDoesNotMutateTables(t *testing.T) {
	c := NewClassifier(rand.NewSource(5))
	for i := 0; i < 3; i++ {
		c.Classify(sample(110, 100, 95, 900), Climate{Temperature: 30, Rainfall: 1200})
	}
	assert.Equal(t, 93, clayCrops[0].Suitability)
	assert.Equal(t, 90, clayCrops[1].Suitability)
}

func TestConfidenceRange(t *testing.T) {
	lo, hi, ok := ConfidenceRange(Black)
	require.True(t, ok)
	assert.Equal(t, 91.0, lo)
	assert.Equal(t, 97.0, hi)

	lo, hi, ok = ConfidenceRange(Loamy)
	require.True(t, ok)
	assert.Equal(t, 85.0, lo)
	assert.Equal(t, 98.0, hi)

	_, _, ok = ConfidenceRange("Peaty Soil")
	assert.False(t, ok)
}

func TestCropNames(t *testing.T) {
	assert.Equal(t, []string{"Cotton", "Soybean", "Jowar (Sorghum)"}, CropNames(Black))
	assert.Nil(t, CropNames("Chalky Soil"))
}
