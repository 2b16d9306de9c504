package videos

import (
	"context"
	"net/http"
	"strings"

	"github.com/vidseo/backend/internal/logging"
)

const (
	defaultWatchURL       = "https://www.youtube.com/watch"
	defaultOEmbedEndpoint = "https://www.youtube.com/oembed"

	// DefaultUserAgent is sent with watch page requests to look like a desktop browser.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/96.0.4664.110 Safari/537.36"
)

// Resolver produces Metadata for video URLs. YouTube videos are enriched from
// the watch page and the oEmbed endpoint; other platforms get a placeholder
// record without any network traffic.
type Resolver struct {
	Client         Getter
	Defaults       Defaults
	UserAgent      string
	WatchURL       string
	OEmbedEndpoint string
}

// NewResolver constructs a Resolver issuing requests through client.
func NewResolver(client Getter, userAgent string) *Resolver {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &Resolver{
		Client:         client,
		Defaults:       DefaultDefaults(),
		UserAgent:      userAgent,
		WatchURL:       defaultWatchURL,
		OEmbedEndpoint: defaultOEmbedEndpoint,
	}
}

// Lookup resolves metadata for the supplied URL. It fails only with errors
// wrapping ErrInvalidInput: when the URL is empty, or when it points at
// YouTube without a recognisable video id.
func (r *Resolver) Lookup(ctx context.Context, url string) (Metadata, error) {
	if r == nil {
		return Metadata{}, ErrProviderUnavailable
	}
	if strings.TrimSpace(url) == "" {
		return Metadata{}, ErrEmptyURL
	}

	platform := ClassifyPlatform(url)
	if platform != PlatformYouTube {
		return r.defaults().placeholder(platform), nil
	}

	videoID, ok := ExtractYouTubeID(url)
	if !ok {
		return Metadata{}, ErrNoVideoID
	}
	return r.ResolveYouTube(ctx, videoID), nil
}

// ResolveYouTube gathers metadata for a YouTube video id. Defaults are
// overlaid first by the watch page and then by oEmbed. It never fails: every
// network or parse problem is logged and the best data so far is returned.
func (r *Resolver) ResolveYouTube(ctx context.Context, videoID string) Metadata {
	ctx, span := logging.StartSpan(ctx, "videos.resolve_youtube")
	defer span.End()
	logger := logging.FromContext(ctx)

	md := r.defaults().youtube(videoID)
	if r.Client == nil {
		logger.Error("youtube resolver has no http client", "videoId", videoID)
		return md
	}

	watchURL := r.watchURL(videoID)

	resp, err := r.Client.Get(ctx, watchURL, r.pageHeader())
	switch {
	case err != nil:
		logger.Warn("fetch watch page failed", "videoId", videoID, "error", err)
	case !resp.OK():
		logger.Warn("watch page returned unexpected status", "videoId", videoID, "status", resp.StatusCode)
	default:
		applyWatchPage(ctx, resp.Text(), &md)
	}

	oembed, err := fetchOEmbed(ctx, r.Client, r.oEmbedEndpoint(), watchURL)
	if err != nil {
		logger.Debug("oEmbed enrichment skipped", "videoId", videoID, "error", err)
		return md
	}
	oembed.apply(&md)

	return md
}

func (r *Resolver) defaults() Defaults {
	return r.Defaults.withFallbacks()
}

func (r *Resolver) watchURL(videoID string) string {
	base := r.WatchURL
	if base == "" {
		base = defaultWatchURL
	}
	return base + "?v=" + videoID
}

func (r *Resolver) oEmbedEndpoint() string {
	if r.OEmbedEndpoint == "" {
		return defaultOEmbedEndpoint
	}
	return r.OEmbedEndpoint
}

func (r *Resolver) pageHeader() http.Header {
	ua := r.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	header := http.Header{}
	header.Set("User-Agent", ua)
	header.Set("Accept-Language", "en-US,en;q=0.9")
	return header
}
