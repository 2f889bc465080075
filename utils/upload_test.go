package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveName(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 5, 0, time.UTC)

	name := ArchiveName("field.jpg", now)
	assert.True(t, strings.HasPrefix(name, "soil_20240601_093005_"), name)
	assert.True(t, strings.HasSuffix(name, "_field.jpg"), name)

	assert.NotEqual(t, name, ArchiveName("field.jpg", now))
}

func TestArchiveNameStripsDirectories(t *testing.T) {
	now := time.Now()
	assert.True(t, strings.HasSuffix(ArchiveName("../../etc/passwd", now), "_passwd"))
	assert.True(t, strings.HasSuffix(ArchiveName(`C:\photos\plot.png`, now), "_plot.png"))
	assert.True(t, strings.HasSuffix(ArchiveName("", now), "_upload"))
}

func TestArchiveUpload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	path, err := ArchiveUpload(dir, "plot.png", []byte("pixels"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}
