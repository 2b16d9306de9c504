package thumbnails

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vidseo/backend/internal/logging"
	"github.com/vidseo/backend/internal/videos"
)

var (
	// ErrGeneratorUnavailable indicates no image generation client is configured.
	ErrGeneratorUnavailable = errors.New("thumbnail generator unavailable")
	// ErrEmptyImage indicates the image API answered without an image URL.
	ErrEmptyImage = errors.New("image generation returned no image")
)

// ImageClient is the part of the OpenAI client the generator needs.
type ImageClient interface {
	CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

// Generator asks an image model for a background matching a concept.
type Generator struct {
	Client  ImageClient
	Model   string
	Quality string
}

type layout struct {
	aspect string
	size   string
}

var platformLayouts = map[videos.Platform]layout{
	videos.PlatformYouTube:   {aspect: "16:9", size: openai.CreateImageSize1792x1024},
	videos.PlatformInstagram: {aspect: "1:1", size: openai.CreateImageSize1024x1024},
	videos.PlatformLinkedin:  {aspect: "1.91:1", size: openai.CreateImageSize1792x1024},
}

func layoutFor(p videos.Platform) layout {
	if l, ok := platformLayouts[p]; ok {
		return l
	}
	return platformLayouts[videos.PlatformYouTube]
}

// NewGenerator wires an OpenAI client. Empty model and quality select
// dall-e-3 at standard quality.
func NewGenerator(client ImageClient, model, quality string) *Generator {
	if model == "" {
		model = openai.CreateImageModelDallE3
	}
	if quality == "" {
		quality = openai.CreateImageQualityStandard
	}
	return &Generator{Client: client, Model: model, Quality: quality}
}

// NewOpenAIClient builds an OpenAI client, optionally against a compatible
// endpoint at baseURL.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Generate returns the URL of a freshly generated thumbnail background for
// the named platform, "YouTube" when empty.
func (g *Generator) Generate(ctx context.Context, c Concept, title, platform string) (string, error) {
	if g == nil || g.Client == nil {
		return "", ErrGeneratorUnavailable
	}
	ctx, span := logging.StartSpan(ctx, "thumbnails.generate", "platform", platform)
	defer span.End()

	l := layoutFor(videos.ParsePlatform(platformName(platform)))
	resp, err := g.Client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         BuildPrompt(c, title, platform),
		Model:          g.Model,
		Size:           l.size,
		Quality:        g.Quality,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrEmptyImage
	}

	logging.FromContext(ctx).Info("thumbnail generated", "model", g.Model, "size", l.size)
	return resp.Data[0].URL, nil
}

// platformName canonicalises known platforms and keeps unknown names as given.
func platformName(platform string) string {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return string(videos.PlatformYouTube)
	}
	if p := videos.ParsePlatform(platform); p != videos.PlatformUnknown {
		return string(p)
	}
	return platform
}

// BuildPrompt describes the thumbnail for the image model, including the
// overlay text it should render. Unknown platforms keep the caller's name and
// the 16:9 layout.
func BuildPrompt(c Concept, title, platform string) string {
	name := platformName(platform)
	l := layoutFor(videos.ParsePlatform(name))

	var b strings.Builder
	fmt.Fprintf(&b, "Create a professional %s thumbnail with these specifications:\n", name)
	fmt.Fprintf(&b, "- Clear %s format for %s\n", l.aspect, name)
	fmt.Fprintf(&b, "- Main focus: %s\n", c.FocalPoint)
	fmt.Fprintf(&b, "- Emotional tone: %s\n", c.Tone)
	fmt.Fprintf(&b, "- Bold, clear text overlay reading %q prominently displayed\n", c.TextOverlay)
	fmt.Fprintf(&b, "- Text should be highly legible, possibly in color %s with contrasting outline\n", c.MainColor())
	fmt.Fprintf(&b, "- Concept: %s\n", c.Concept)
	fmt.Fprintf(&b, "- Related to: %s\n", title)
	b.WriteString("- Professional eye-catching design with high contrast\n")
	b.WriteString("- Make sure the text stands out and is easily readable\n")
	fmt.Fprintf(&b, "- Thumbnail should look professional and high-quality for %s\n", name)
	b.WriteString("- Text should be integrated with the visual elements in a visually appealing way\n")
	return b.String()
}
