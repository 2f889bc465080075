package soil

import "math"

// rule maps a color predicate to a label. Rules are evaluated in slice
// order and the first match wins; several ranges overlap on purpose.
type rule struct {
	label Label
	match func(s Sample) bool
	// confidence is drawn uniformly from [base, base+span)
	base, span float64
	crops      []Crop
}

var rules = []rule{
	{
		label: Sandy,
		match: func(s Sample) bool {
			return s.Brightness > 140 && s.R > 150 && s.Variance < 1500
		},
		base: 88, span: 7,
		crops: sandyCrops,
	},
	{
		label: Black,
		match: func(s Sample) bool {
			return s.Brightness < 80
		},
		base: 91, span: 6,
		crops: blackCrops,
	},
	{
		label: RedLaterite,
		match: func(s Sample) bool {
			return s.R > 130 && redGreenRatio(s) > 1.3 && s.Brightness > 100 && s.Brightness < 150
		},
		base: 89, span: 7,
		crops: redLateriteCrops,
	},
	{
		label: Clay,
		match: func(s Sample) bool {
			return s.Brightness < 120 && s.Variance > 800
		},
		base: 86, span: 9,
		crops: clayCrops,
	},
	{
		label: Loamy,
		match: func(s Sample) bool {
			return s.Brightness > 100 && s.Brightness < 150 && s.Variance > 500 && s.Variance < 2000
		},
		base: 90, span: 8,
		crops: loamyCrops,
	},
	{
		label: Silty,
		match: func(s Sample) bool {
			return s.Brightness > 120 && s.Variance < 1000
		},
		base: 84, span: 9,
		crops: siltyCrops,
	},
}

var fallback = rule{
	label: Loamy,
	match: func(Sample) bool { return true },
	base:  85, span: 8,
	crops: fallbackLoamyCrops,
}

// redGreenRatio treats a zero green mean as an infinitely red image.
func redGreenRatio(s Sample) float64 {
	if s.G == 0 {
		if s.R > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return s.R / s.G
}

// matchRule returns the first rule whose predicate holds, or the fallback.
func matchRule(s Sample) rule {
	for _, r := range rules {
		if r.match(s) {
			return r
		}
	}
	return fallback
}

// ConfidenceRange returns the inclusive bounds of the confidence score the
// classifier can report for label. Loamy spans both its rule and the fallback.
func ConfidenceRange(label Label) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, r := range append(rules[:len(rules):len(rules)], fallback) {
		if r.label != label {
			continue
		}
		lo = math.Min(lo, r.base)
		hi = math.Max(hi, r.base+r.span)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
