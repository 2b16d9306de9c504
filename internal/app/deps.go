package app

import (
	"context"
	"time"

	"github.com/vidseo/backend/internal/config"
	"github.com/vidseo/backend/internal/handlers"
	"github.com/vidseo/backend/internal/middleware"
	"github.com/vidseo/backend/internal/storage"
	"github.com/vidseo/backend/internal/thumbnails"
	"github.com/vidseo/backend/internal/videos"
)

const limiterTTL = 10 * time.Minute

var startedAt = time.Now()

// buildDependencies wires together concrete implementations used by the HTTP handlers.
// Generation and uploads stay disabled, as nil collaborators, until configured.
func buildDependencies(ctx context.Context, cfg config.Config) (handlers.Dependencies, error) {
	getter := videos.NewHTTPGetter(nil)

	deps := handlers.Dependencies{
		Metadata:        videos.NewResolver(getter, cfg.UserAgent),
		FetchTimeout:    cfg.FetchTimeout,
		Renderer:        thumbnails.NewRenderer(getter),
		GenerateLimiter: middleware.NewIPRateLimiter(cfg.GenerateRate, limiterTTL),
		Started:         startedAt,
	}

	if cfg.OpenAI.APIKey != "" {
		client := thumbnails.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL)
		deps.Generator = thumbnails.NewGenerator(client, cfg.OpenAI.ImageModel, cfg.OpenAI.ImageQuality)
	}

	store, err := newAssetStorage(ctx, cfg)
	if err != nil {
		return handlers.Dependencies{}, err
	}
	if store != nil {
		deps.Storage = store
	}

	return deps, nil
}

// newAssetStorage returns nil when no bucket is configured.
func newAssetStorage(ctx context.Context, cfg config.Config) (*storage.S3Storage, error) {
	if cfg.ObjectStore.Bucket == "" {
		return nil, nil
	}
	return storage.NewS3Storage(ctx, cfg.ObjectStore)
}
