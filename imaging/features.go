package imaging

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// Features is the color summary of one soil photo.
type Features struct {
	MeanR      float64 `json:"mean_r"`
	MeanG      float64 `json:"mean_g"`
	MeanB      float64 `json:"mean_b"`
	Brightness float64 `json:"brightness"`
	// Variance is the sum of the per-channel population variances and
	// stands in for surface texture.
	Variance       float64 `json:"variance"`
	RedDominance   float64 `json:"red_dominance"`
	GreenDominance float64 `json:"green_dominance"`
	BlueDominance  float64 `json:"blue_dominance"`
}

// Extract computes the feature vector over the first three channels of p.
// Any further channel (alpha) is ignored.
func Extract(p Pixels) (Features, error) {
	if p.Channels < 3 {
		return Features{}, &InvalidImageError{Channels: p.Channels, Reason: "at least 3 color channels required"}
	}
	n := p.Width * p.Height
	if n <= 0 || len(p.Pix) < n*p.Channels {
		return Features{}, &InvalidImageError{Channels: p.Channels, Reason: "image has no pixels"}
	}

	var means, variances [3]float64
	channel := make([]float64, n)
	for ch := 0; ch < 3; ch++ {
		for i := 0; i < n; i++ {
			channel[i] = float64(p.Pix[i*p.Channels+ch])
		}
		means[ch], variances[ch] = stat.PopMeanVariance(channel, nil)
	}

	f := Features{
		MeanR:    means[0],
		MeanG:    means[1],
		MeanB:    means[2],
		Variance: variances[0] + variances[1] + variances[2],
	}
	sum := f.MeanR + f.MeanG + f.MeanB
	f.Brightness = sum / 3
	if sum > 0 {
		f.RedDominance = f.MeanR / sum
		f.GreenDominance = f.MeanG / sum
		f.BlueDominance = f.MeanB / sum
	}
	return f, nil
}

// ExtractImage flattens img and extracts its features.
func ExtractImage(img image.Image) (Features, error) {
	return Extract(PixelsFromImage(img))
}
