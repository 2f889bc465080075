package models

import (
	"github.com/Sharmela-S/Farm-AI/advisory"
	"github.com/Sharmela-S/Farm-AI/soil"
)

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Status    string `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse describes the running service.
type HealthResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Endpoints []string `json:"endpoints"`
}

// SoilTypeInfo lists what the classifier can report for one label.
type SoilTypeInfo struct {
	SoilType      soil.Label `json:"soil_type"`
	MinConfidence float64    `json:"min_confidence"`
	MaxConfidence float64    `json:"max_confidence"`
	Crops         []string   `json:"crops"`
	Irrigation    string     `json:"irrigation_frequency"`
}

// CropPlanQuery is bound from the crop plan query string.
type CropPlanQuery struct {
	Soil     string  `form:"soil,default=Loamy Soil"`
	Rainfall float64 `form:"rainfall,default=800" binding:"gte=0"`
	Area     float64 `form:"area,default=1" binding:"gt=0"`
}

// Validate rejects NaN and infinite values.
func (q CropPlanQuery) Validate() error {
	if err := finite("rainfall", q.Rainfall); err != nil {
		return err
	}
	return finite("area", q.Area)
}

// CropPlan is the economics and input plan for one crop on one field.
type CropPlan struct {
	Crop           string                   `json:"crop"`
	SoilType       string                   `json:"soil_type"`
	AreaHectares   float64                  `json:"area_hectares"`
	Varieties      []string                 `json:"varieties"`
	Fertilizer     advisory.FertilizerTotal `json:"fertilizer"`
	Irrigation     advisory.Irrigation      `json:"irrigation"`
	WaterMM        float64                  `json:"total_water_mm"`
	YieldTonsPerHa float64                  `json:"estimated_yield_tons_per_ha"`
	Returns        advisory.Returns         `json:"returns"`
}
