package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	Port           string
	Version        string
	UploadDir      string // empty disables archiving of uploads
	MaxUploadBytes int64
	CORSOrigins    []string
	AuthSecret     string // empty disables token checks
	AnalysisMaxDim int    // 0 analyses images at full resolution
}

// App is the configuration in use by the handlers.
var App = Default()

// Default returns the settings used when no environment is present.
func Default() *Config {
	return &Config{
		Port:           "5000",
		Version:        "1.0.0",
		UploadDir:      "uploads",
		MaxUploadBytes: 16 << 20,
		CORSOrigins:    []string{"http://localhost:3000", "http://localhost:5000", "http://127.0.0.1:5000"},
	}
}

// Load reads the environment on top of Default and stores the result in App.
func Load() *Config {
	d := Default()
	cfg := &Config{
		Port:           getEnv("PORT", d.Port),
		Version:        getEnv("API_VERSION", d.Version),
		UploadDir:      getEnv("UPLOAD_DIR", d.UploadDir),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_MB", 16)) << 20,
		CORSOrigins:    getEnvList("CORS_ORIGINS", d.CORSOrigins),
		AuthSecret:     os.Getenv("AUTH_SECRET"),
		AnalysisMaxDim: getEnvInt("ANALYSIS_MAX_DIM", 0),
	}
	if v, ok := os.LookupEnv("UPLOAD_DIR"); ok && v == "" {
		cfg.UploadDir = ""
	}
	App = cfg
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
