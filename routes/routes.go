package routes

import (
	"github.com/Sharmela-S/Farm-AI/config"
	"github.com/Sharmela-S/Farm-AI/controllers"
	"github.com/Sharmela-S/Farm-AI/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes builds the gin engine for cfg and makes cfg the configuration
// the handlers read.
func SetupRoutes(cfg *config.Config) *gin.Engine {
	config.App = cfg

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxUploadBytes

	corsConfig := cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", middlewares.RequestIDHeader},
	}
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))
	r.Use(middlewares.RequestID())

	api := r.Group("/api")
	api.GET("/health", controllers.HealthCheck)

	// Protected routes; open when no AUTH_SECRET is configured
	auth := api.Group("")
	auth.Use(middlewares.AuthMiddleware(cfg.AuthSecret))
	auth.POST("/analyze", middlewares.BodyLimit(cfg.MaxUploadBytes), controllers.AnalyzeSoil)
	auth.GET("/soil-types", controllers.ListSoilTypes)
	auth.GET("/crops/:name/plan", controllers.GetCropPlan)

	return r
}
