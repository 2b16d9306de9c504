package handlers

import (
	"context"
	"image"

	"github.com/vidseo/backend/internal/thumbnails"
	"github.com/vidseo/backend/internal/videos"
)

// MetadataProvider resolves video details for submitted URLs.
type MetadataProvider interface {
	Lookup(ctx context.Context, url string) (videos.Metadata, error)
}

// ThumbnailGenerator produces a background image URL for a thumbnail concept.
type ThumbnailGenerator interface {
	Generate(ctx context.Context, concept thumbnails.Concept, title, platform string) (string, error)
}

// PreviewRenderer draws a thumbnail preview locally.
type PreviewRenderer interface {
	Preview(ctx context.Context, concept thumbnails.Concept, baseImageURL string) image.Image
}
