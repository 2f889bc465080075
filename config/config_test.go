package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_VERSION", "MAX_UPLOAD_MB", "CORS_ORIGINS", "AUTH_SECRET", "ANALYSIS_MAX_DIM"} {
		t.Setenv(k, "")
	}
	t.Cleanup(func() { App = Default() })

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, int64(16<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.AuthSecret)
	assert.Len(t, cfg.CORSOrigins, 3)
	assert.Same(t, cfg, App)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_MB", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("ANALYSIS_MAX_DIM", "512")
	t.Setenv("UPLOAD_DIR", "")
	t.Cleanup(func() { App = Default() })

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(4<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.Equal(t, 512, cfg.AnalysisMaxDim)
	assert.Empty(t, cfg.UploadDir)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "lots")
	t.Cleanup(func() { App = Default() })

	assert.Equal(t, int64(16<<20), Load().MaxUploadBytes)
}
