package videos

import (
	"context"
	"fmt"
	"net/url"
)

// Metadata is the normalized description of a video. Title, ThumbnailURL and
// Author are always populated, falling back to synthesized placeholders.
type Metadata struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Duration     int      `json:"duration"`
	Views        int64    `json:"views"`
	Author       string   `json:"author"`
	Platform     Platform `json:"platform"`
	VideoID      string   `json:"video_id"`
}

// Provider returns metadata for the supplied video URL.
type Provider interface {
	Lookup(ctx context.Context, url string) (Metadata, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, url string) (Metadata, error)

// Lookup implements Provider.
func (f ProviderFunc) Lookup(ctx context.Context, url string) (Metadata, error) {
	return f(ctx, url)
}

// Defaults holds the placeholder values used whenever richer metadata is
// unavailable.
type Defaults struct {
	Duration                int
	Views                   int64
	YouTubeAuthor           string
	YouTubeTitleFormat      string
	YouTubeThumbnailFormat  string
	PlaceholderThumbnailURL string
	UnknownVideoID          string
}

// DefaultDefaults returns the stock placeholder configuration.
func DefaultDefaults() Defaults {
	return Defaults{
		Duration:                300,
		Views:                   0,
		YouTubeAuthor:           "YouTube Creator",
		YouTubeTitleFormat:      "YouTube Video (%s)",
		YouTubeThumbnailFormat:  "https://img.youtube.com/vi/%s/hqdefault.jpg",
		PlaceholderThumbnailURL: "https://via.placeholder.com/1280x720.png?text=",
		UnknownVideoID:          "unknown",
	}
}

// withFallbacks fills every zero field from DefaultDefaults, so a partially
// configured Defaults still yields complete records.
func (d Defaults) withFallbacks() Defaults {
	base := DefaultDefaults()
	if d.Duration == 0 {
		d.Duration = base.Duration
	}
	if d.YouTubeAuthor == "" {
		d.YouTubeAuthor = base.YouTubeAuthor
	}
	if d.YouTubeTitleFormat == "" {
		d.YouTubeTitleFormat = base.YouTubeTitleFormat
	}
	if d.YouTubeThumbnailFormat == "" {
		d.YouTubeThumbnailFormat = base.YouTubeThumbnailFormat
	}
	if d.PlaceholderThumbnailURL == "" {
		d.PlaceholderThumbnailURL = base.PlaceholderThumbnailURL
	}
	if d.UnknownVideoID == "" {
		d.UnknownVideoID = base.UnknownVideoID
	}
	return d
}

// youtube builds the starting record for a YouTube video, derived from the
// identifier alone.
func (d Defaults) youtube(videoID string) Metadata {
	return Metadata{
		Title:        fmt.Sprintf(d.YouTubeTitleFormat, videoID),
		ThumbnailURL: fmt.Sprintf(d.YouTubeThumbnailFormat, videoID),
		Duration:     d.Duration,
		Views:        d.Views,
		Author:       d.YouTubeAuthor,
		Platform:     PlatformYouTube,
		VideoID:      videoID,
	}
}

// placeholder builds the synthetic record returned for platforms that are not
// scraped.
func (d Defaults) placeholder(p Platform) Metadata {
	name := p.String()
	return Metadata{
		Title:        "video on " + name,
		ThumbnailURL: d.PlaceholderThumbnailURL + url.QueryEscape(name),
		Duration:     d.Duration,
		Views:        d.Views,
		Author:       name + "creator",
		Platform:     p,
		VideoID:      d.UnknownVideoID,
	}
}
