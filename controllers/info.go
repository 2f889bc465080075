package controllers

import (
	"net/http"

	"github.com/Sharmela-S/Farm-AI/advisory"
	"github.com/Sharmela-S/Farm-AI/config"
	"github.com/Sharmela-S/Farm-AI/models"
	"github.com/Sharmela-S/Farm-AI/soil"
	"github.com/Sharmela-S/Farm-AI/utils"

	"github.com/gin-gonic/gin"
)

// Endpoints is the public API surface reported by the health check.
var Endpoints = []string{
	"GET /api/health",
	"POST /api/analyze",
	"GET /api/soil-types",
	"GET /api/crops/:name/plan",
}

// HealthCheck reports that the API is up.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Message:   "✅ API is running perfectly!",
		Version:   config.App.Version,
		Timestamp: utils.Timestamp(),
		Endpoints: Endpoints,
	})
}

// ListSoilTypes describes every soil type the classifier can return.
func ListSoilTypes(c *gin.Context) {
	out := make([]models.SoilTypeInfo, 0, len(soil.Labels))
	for _, label := range soil.Labels {
		lo, hi, _ := soil.ConfidenceRange(label)
		out = append(out, models.SoilTypeInfo{
			SoilType:      label,
			MinConfidence: lo,
			MaxConfidence: hi,
			Crops:         soil.CropNames(label),
			Irrigation:    advisory.IrrigationFrequency(label),
		})
	}
	c.JSON(http.StatusOK, gin.H{"soil_types": out})
}

// GetCropPlan returns varieties, inputs and expected returns for growing
// one crop on a field.
func GetCropPlan(c *gin.Context) {
	crop := c.Param("name")

	query := c.Request.URL.Query()
	utils.DropBlank(query)
	c.Request.URL.RawQuery = query.Encode()

	var q models.CropPlanQuery
	err := c.ShouldBindQuery(&q)
	if err == nil {
		err = q.Validate()
	}
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	label := soil.Label(q.Soil)
	if _, _, ok := soil.ConfidenceRange(label); !ok {
		utils.RespondError(c, http.StatusBadRequest, "Unknown soil type", q.Soil)
		return
	}

	c.JSON(http.StatusOK, models.CropPlan{
		Crop:           crop,
		SoilType:       q.Soil,
		AreaHectares:   q.Area,
		Varieties:      advisory.Varieties(crop),
		Fertilizer:     advisory.FertilizerRequirement(crop, q.Area),
		Irrigation:     advisory.IrrigationPlan(label, crop),
		WaterMM:        advisory.WaterRequirement(crop, label),
		YieldTonsPerHa: advisory.EstimateYield(crop, q.Rainfall),
		Returns:        advisory.ROI(crop, q.Area),
	})
}
