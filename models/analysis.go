package models

import (
	"fmt"
	"math"

	"github.com/Sharmela-S/Farm-AI/advisory"
	"github.com/Sharmela-S/Farm-AI/soil"
)

// AnalysisForm holds the optional climate fields sent with a soil image.
type AnalysisForm struct {
	Temperature float64 `form:"temperature,default=28"`
	Rainfall    float64 `form:"rainfall,default=800" binding:"gte=0"`
	Humidity    float64 `form:"humidity,default=65" binding:"gte=0,lte=100"`
	Season      string  `form:"season,default=kharif"`
	Location    string  `form:"location,default=Unknown"`
}

// Validate rejects NaN and infinite readings, which the binding tags let through.
func (f AnalysisForm) Validate() error {
	if err := finite("temperature", f.Temperature); err != nil {
		return err
	}
	if err := finite("rainfall", f.Rainfall); err != nil {
		return err
	}
	return finite("humidity", f.Humidity)
}

func finite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a finite number", field)
	}
	return nil
}

// RGBValues are the channel means truncated to integers.
type RGBValues struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Dominance is each channel's share of the combined mean.
type Dominance struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// SoilAnalysis summarises the classification of one image.
type SoilAnalysis struct {
	SoilType   soil.Label `json:"soil_type"`
	Confidence float64    `json:"confidence"`
	RGBValues  RGBValues  `json:"rgb_values"`
	Brightness float64    `json:"brightness"`
	Variance   float64    `json:"variance"`
	Dominance  Dominance  `json:"dominance"`
}

// InputData echoes the climate inputs used for the analysis.
type InputData struct {
	Location    string  `json:"location"`
	Season      string  `json:"season"`
	Temperature float64 `json:"temperature"`
	Rainfall    float64 `json:"rainfall"`
	Humidity    float64 `json:"humidity"`
}

// AnalysisResponse is the full recommendation bundle for one upload.
type AnalysisResponse struct {
	Status           string              `json:"status"`
	Timestamp        string              `json:"timestamp"`
	SoilAnalysis     SoilAnalysis        `json:"soil_analysis"`
	RecommendedCrops []soil.Crop         `json:"recommended_crops"`
	Fertilizer       advisory.Fertilizer `json:"fertilizer"`
	Irrigation       advisory.Irrigation `json:"irrigation"`
	Tips             []string            `json:"tips"`
	InputData        InputData           `json:"input_data"`
}
