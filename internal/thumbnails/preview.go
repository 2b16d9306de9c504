package thumbnails

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"github.com/vidseo/backend/internal/logging"
	"github.com/vidseo/backend/internal/videos"
)

var errNoBaseImage = errors.New("no base image")

// Renderer composes preview thumbnails locally. A base image, when one can
// be downloaded, replaces the generated gradient background.
type Renderer struct {
	Client    videos.Getter
	Width     int
	Height    int
	Watermark string
}

// NewRenderer returns a renderer producing 1280x720 previews.
func NewRenderer(client videos.Getter) *Renderer {
	return &Renderer{
		Client:    client,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Watermark: DefaultWatermark,
	}
}

// Preview renders the concept. It never fails: a missing or undecodable base
// image falls back to the gradient background.
func (r *Renderer) Preview(ctx context.Context, c Concept, baseImageURL string) image.Image {
	if r == nil {
		r = NewRenderer(nil)
	}
	ctx, span := logging.StartSpan(ctx, "thumbnails.preview", "tone", c.Tone)
	defer span.End()

	width, height := r.size()
	base, err := r.loadBase(ctx, baseImageURL, width, height)
	if err != nil {
		if !errors.Is(err, errNoBaseImage) {
			logging.FromContext(ctx).Warn("base image unavailable, using gradient", "url", baseImageURL, "error", err)
		}
		base = Background(c, width, height)
	}

	dc := gg.NewContextForImage(base)
	if strings.TrimSpace(c.TextOverlay) != "" {
		drawTextOverlay(dc, c)
	}
	drawWatermark(dc, r.Watermark)
	return dc.Image()
}

func (r *Renderer) size() (int, int) {
	if r.Width <= 0 || r.Height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return r.Width, r.Height
}

func (r *Renderer) loadBase(ctx context.Context, rawURL string, width, height int) (image.Image, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, errNoBaseImage
	}
	if r.Client == nil {
		return nil, videos.ErrProviderUnavailable
	}

	resp, err := r.Client.Get(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("base image: unexpected status %d", resp.StatusCode)
	}

	img, format, err := image.Decode(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("decode base image: %w", err)
	}
	logging.FromContext(ctx).Debug("base image decoded", "format", format, "bounds", img.Bounds().String())

	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3), nil
}
