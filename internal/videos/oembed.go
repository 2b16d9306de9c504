package videos

import (
	"context"
	"fmt"
	"net/url"
)

// oEmbedResponse is the subset of the oEmbed document used for enrichment.
type oEmbedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
	ProviderName string `json:"provider_name"`
	Type         string `json:"type"`
}

func oEmbedURL(endpoint, watchURL string) string {
	return fmt.Sprintf("%s?url=%s&format=json", endpoint, url.QueryEscape(watchURL))
}

func fetchOEmbed(ctx context.Context, client Getter, endpoint, watchURL string) (*oEmbedResponse, error) {
	resp, err := client.Get(ctx, oEmbedURL(endpoint, watchURL), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch oEmbed data: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("oEmbed endpoint returned status %d", resp.StatusCode)
	}

	var oembed oEmbedResponse
	if err := resp.JSON(&oembed); err != nil {
		return nil, fmt.Errorf("parse oEmbed response: %w", err)
	}
	return &oembed, nil
}

// apply overwrites title, author and thumbnail with whichever of them the
// oEmbed document supplies. Description, duration and views are never touched.
func (o *oEmbedResponse) apply(md *Metadata) {
	if o.Title != "" {
		md.Title = o.Title
	}
	if o.AuthorName != "" {
		md.Author = o.AuthorName
	}
	if o.ThumbnailURL != "" {
		md.ThumbnailURL = o.ThumbnailURL
	}
}
