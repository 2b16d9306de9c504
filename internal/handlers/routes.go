package handlers

import (
	"net/http"
	"time"

	"github.com/vidseo/backend/internal/thumbnails"
)

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{Started: deps.Started}
	metadata := MetadataHandler{Metadata: deps.Metadata, Timeout: deps.FetchTimeout}
	thumbs := ThumbnailHandler{
		Renderer:  deps.Renderer,
		Generator: deps.Generator,
		Storage:   deps.Storage,
		Limiter:   deps.GenerateLimiter,
		Timeout:   deps.FetchTimeout,
	}

	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/api/v1/videos/metadata", metadata.Resolve)
	mux.HandleFunc("/api/v1/thumbnails/preview", thumbs.Preview)
	mux.HandleFunc("/api/v1/thumbnails/generate", thumbs.Generate)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Metadata        MetadataProvider
	FetchTimeout    time.Duration
	Renderer        PreviewRenderer
	Generator       ThumbnailGenerator
	Storage         thumbnails.AssetStorage
	GenerateLimiter RateLimiter
	Started         time.Time
}
