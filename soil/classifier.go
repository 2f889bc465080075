package soil

import (
	"math"
	"math/rand"
	"sort"
	"sync"
)

// Classifier applies the soil rule table. It is safe for concurrent use.
type Classifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewClassifier returns a classifier drawing confidence jitter from src.
// A nil src uses the process-wide math/rand generator.
func NewClassifier(src rand.Source) *Classifier {
	c := &Classifier{}
	if src != nil {
		c.rng = rand.New(src)
	}
	return c
}

func (c *Classifier) float64() float64 {
	if c.rng == nil {
		return rand.Float64()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}

// Classify picks exactly one soil label for s, a confidence score in the
// label's range, and the label's crops ranked for climate cl.
func (c *Classifier) Classify(s Sample, cl Climate) Result {
	r := matchRule(s)

	confidence := r.base + c.float64()*r.span
	confidence = math.Round(confidence*10) / 10

	crops := make([]Crop, len(r.crops))
	copy(crops, r.crops)
	nudge(crops, cl)
	sort.SliceStable(crops, func(i, j int) bool {
		return crops[i].Suitability > crops[j].Suitability
	})

	return Result{
		Label:      r.label,
		Confidence: confidence,
		Crops:      crops,
	}
}

// CropNames returns the candidate names for label in table order, or nil
// for an unknown label. Loamy returns the names of its rule table.
func CropNames(label Label) []string {
	for _, r := range rules {
		if r.label == label {
			names := make([]string, len(r.crops))
			for i, cr := range r.crops {
				names[i] = cr.Name
			}
			return names
		}
	}
	return nil
}
