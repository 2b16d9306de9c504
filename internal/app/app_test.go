package app

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidseo/backend/internal/config"
	"github.com/vidseo/backend/internal/thumbnails"
	"github.com/vidseo/backend/internal/videos"
)

func TestBuildDependenciesDefaults(t *testing.T) {
	cfg := config.Config{
		FetchTimeout: 3 * time.Second,
		GenerateRate: config.RateLimitConfig{Requests: 5, Window: time.Minute, Burst: 2},
	}

	deps, err := buildDependencies(context.Background(), cfg)
	require.NoError(t, err)

	assert.NotNil(t, deps.Metadata, "expected metadata provider to be configured")
	assert.NotNil(t, deps.Renderer, "expected preview renderer to be configured")
	assert.NotNil(t, deps.GenerateLimiter, "expected generate limiter to be configured")
	assert.Equal(t, 3*time.Second, deps.FetchTimeout)
	assert.Nil(t, deps.Generator, "expected generation to be disabled without an api key")
	assert.Nil(t, deps.Storage, "expected storage to be disabled without a bucket")
}

func TestBuildDependenciesConfigured(t *testing.T) {
	cfg := config.Config{
		OpenAI:      config.OpenAIConfig{APIKey: "sk-test", ImageModel: "dall-e-3", ImageQuality: "hd"},
		ObjectStore: config.ObjectStoreConfig{Bucket: "test-bucket", Endpoint: "http://localhost:9000", Region: "us-east-1"},
	}

	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	deps, err := buildDependencies(context.Background(), cfg)
	require.NoError(t, err)

	gen, ok := deps.Generator.(*thumbnails.Generator)
	require.True(t, ok, "expected thumbnail generator got %T", deps.Generator)
	assert.Equal(t, "dall-e-3", gen.Model)
	assert.Equal(t, "hd", gen.Quality)
	assert.NotNil(t, deps.Storage, "expected object storage to be configured")
}

func TestRunRequiresCommand(t *testing.T) {
	assert.Error(t, run(context.Background(), nil, &bytes.Buffer{}), "expected error without a command")
	assert.Error(t, run(context.Background(), []string{"migrate"}, &bytes.Buffer{}), "expected error for unknown command")
}

func TestRunResolvePlaceholder(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"resolve", "https://www.instagram.com/reel/abc"}, &out))

	var md videos.Metadata
	require.NoError(t, json.Unmarshal(out.Bytes(), &md), out.String())
	assert.Equal(t, videos.PlatformInstagram, md.Platform)
	assert.Equal(t, "video on Instagram", md.Title)
	assert.Equal(t, "unknown", md.VideoID)
}

func TestRunResolveInvalidInput(t *testing.T) {
	err := run(context.Background(), []string{"resolve", "   "}, &bytes.Buffer{})
	assert.ErrorIs(t, err, videos.ErrInvalidInput)

	assert.Error(t, run(context.Background(), []string{"resolve"}, &bytes.Buffer{}), "expected usage error without a url")
}

func TestRunThumbnailWritesPNG(t *testing.T) {
	dir := t.TempDir()
	conceptPath := filepath.Join(dir, "concept.json")
	outPath := filepath.Join(dir, "out.png")

	concept := `{"concept":"mountain sunrise","text_overlay":"CLIMB","tone":"dramatic","colors":["#FFAA00","#220044"]}`
	require.NoError(t, os.WriteFile(conceptPath, []byte(concept), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"thumbnail", "-concept", conceptPath, "-out", outPath}, &out))
	assert.Equal(t, outPath, strings.TrimSpace(out.String()))

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, thumbnails.DefaultWidth, cfg.Width)
	assert.Equal(t, thumbnails.DefaultHeight, cfg.Height)
}

func TestRunThumbnailErrors(t *testing.T) {
	assert.Error(t, run(context.Background(), []string{"thumbnail"}, &bytes.Buffer{}), "expected usage error without a concept")

	missing := filepath.Join(t.TempDir(), "missing.json")
	assert.Error(t, run(context.Background(), []string{"thumbnail", "-concept", missing}, &bytes.Buffer{}), "expected error for missing concept file")

	conceptPath := filepath.Join(t.TempDir(), "concept.json")
	require.NoError(t, os.WriteFile(conceptPath, []byte(`{}`), 0o600))
	err := run(context.Background(), []string{"thumbnail", "-concept", conceptPath, "-publish"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, thumbnails.ErrStorageUnavailable)
}
