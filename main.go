package main

import (
	"log"
	"path/filepath"

	"github.com/Sharmela-S/Farm-AI/config"
	"github.com/Sharmela-S/Farm-AI/routes"
	"github.com/Sharmela-S/Farm-AI/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	cfg := config.Load()

	if cfg.UploadDir != "" {
		if err := utils.EnsureDir(cfg.UploadDir); err != nil {
			log.Fatalf("Failed to create upload folder: %v", err)
		}
		abs, _ := filepath.Abs(cfg.UploadDir)
		log.Printf("📁 Upload folder: %s", abs)
	}
	if cfg.AuthSecret == "" {
		log.Println("⚠ AUTH_SECRET not set, API routes are unauthenticated")
	}

	r := routes.SetupRoutes(cfg)

	log.Printf("🌾 Soil analysis API %s starting on port %s", cfg.Version, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
