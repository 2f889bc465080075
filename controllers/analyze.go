package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"mime/multipart"
	"net/http"

	"github.com/Sharmela-S/Farm-AI/advisory"
	"github.com/Sharmela-S/Farm-AI/config"
	"github.com/Sharmela-S/Farm-AI/imaging"
	"github.com/Sharmela-S/Farm-AI/models"
	"github.com/Sharmela-S/Farm-AI/soil"
	"github.com/Sharmela-S/Farm-AI/utils"

	"github.com/gin-gonic/gin"
)

const analysisFailedMessage = "Failed to analyze image. Please try again."

var classifier = soil.NewClassifier(nil)

// AnalyzeSoil classifies an uploaded soil image and returns crop,
// fertilizer and irrigation advice for it.
func AnalyzeSoil(c *gin.Context) {
	log.Println("📥 Received analysis request...")

	file, err := c.FormFile("soil_image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.RespondError(c, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Image exceeds the %d MB upload limit", tooLarge.Limit>>20), "")
			return
		}
		if emptyFilePart(c.Request.MultipartForm) {
			log.Println("❌ Empty filename")
			utils.RespondError(c, http.StatusBadRequest, "No file selected", "")
			return
		}
		log.Println("❌ No image in request")
		utils.RespondError(c, http.StatusBadRequest, "No soil image uploaded", "")
		return
	}
	log.Printf("📸 Image received: %s", file.Filename)

	// blank fields fall back to their defaults
	utils.DropBlank(c.Request.MultipartForm.Value)

	var form models.AnalysisForm
	if err := bindClimate(c, &form); err != nil {
		log.Printf("❌ Invalid form data: %v", err)
		utils.RespondError(c, http.StatusBadRequest, "Invalid climate parameters", err.Error())
		return
	}
	log.Printf("📍 Location: %s", form.Location)
	log.Printf("🌡️ Temperature: %.1f°C", form.Temperature)
	log.Printf("💧 Rainfall: %.0fmm", form.Rainfall)

	data, err := readUpload(file)
	if err != nil {
		log.Printf("❌ Error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to analyze image", analysisFailedMessage)
		return
	}

	if dir := config.App.UploadDir; dir != "" {
		if path, err := utils.ArchiveUpload(dir, file.Filename, data); err != nil {
			log.Printf("⚠ Could not archive upload: %v", err)
		} else {
			log.Printf("📁 Archived upload to %s", path)
		}
	}

	response, err := analyze(data, form)
	if err != nil {
		log.Printf("❌ Error: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to analyze image", analysisFailedMessage)
		return
	}

	log.Printf("✅ Classification: %s (%.1f%% confidence)", response.SoilAnalysis.SoilType, response.SoilAnalysis.Confidence)
	c.JSON(http.StatusOK, response)
}

func bindClimate(c *gin.Context, form *models.AnalysisForm) error {
	if err := c.ShouldBind(form); err != nil {
		return err
	}
	return form.Validate()
}

// emptyFilePart reports whether soil_image was sent as a file part with an
// empty filename. mime/multipart files such parts under Value, not File.
func emptyFilePart(mf *multipart.Form) bool {
	if mf == nil {
		return false
	}
	_, ok := mf.Value["soil_image"]
	return ok
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", file.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", file.Filename, err)
	}
	return data, nil
}

// analyze runs extraction, classification and advice lookup over raw image bytes.
func analyze(data []byte, form models.AnalysisForm) (*models.AnalysisResponse, error) {
	img, format, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	log.Printf("🖼️ Image size: %dx%d (%s)", b.Dx(), b.Dy(), format)

	img = imaging.Fit(img, config.App.AnalysisMaxDim)
	features, err := imaging.ExtractImage(img)
	if err != nil {
		return nil, err
	}
	log.Printf("🎨 Average RGB: R=%.0f, G=%.0f, B=%.0f", features.MeanR, features.MeanG, features.MeanB)
	log.Printf("💡 Brightness: %.1f", features.Brightness)
	log.Printf("📊 Variance: %.1f", features.Variance)

	result := classifier.Classify(soil.Sample{
		R:          features.MeanR,
		G:          features.MeanG,
		B:          features.MeanB,
		Brightness: features.Brightness,
		Variance:   features.Variance,
	}, soil.Climate{
		Temperature: form.Temperature,
		Rainfall:    form.Rainfall,
	})

	topCrop := result.Crops[0].Name

	return &models.AnalysisResponse{
		Status:    "success",
		Timestamp: utils.Timestamp(),
		SoilAnalysis: models.SoilAnalysis{
			SoilType:   result.Label,
			Confidence: result.Confidence,
			RGBValues: models.RGBValues{
				R: int(features.MeanR),
				G: int(features.MeanG),
				B: int(features.MeanB),
			},
			Brightness: math.Round(features.Brightness*10) / 10,
			Variance:   math.Round(features.Variance*10) / 10,
			Dominance: models.Dominance{
				Red:   round3(features.RedDominance),
				Green: round3(features.GreenDominance),
				Blue:  round3(features.BlueDominance),
			},
		},
		RecommendedCrops: result.Crops,
		Fertilizer:       advisory.FertilizerPlan(result.Label, topCrop),
		Irrigation:       advisory.IrrigationPlan(result.Label, topCrop),
		Tips:             advisory.Tips(result.Label, form.Temperature, form.Rainfall),
		InputData: models.InputData{
			Location:    form.Location,
			Season:      form.Season,
			Temperature: form.Temperature,
			Rainfall:    form.Rainfall,
			Humidity:    form.Humidity,
		},
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
