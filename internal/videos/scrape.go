package videos

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/vidseo/backend/internal/logging"
)

var (
	lengthSecondsPattern = regexp.MustCompile(`"lengthSeconds":"(\d+)"`)
	viewCountPattern     = regexp.MustCompile(`"viewCount":"(\d+)"`)
)

var errNoMatch = errors.New("no match")

// watchPage holds the tags of a watch page that metadata is read from.
type watchPage struct {
	raw       string
	meta      map[string]string // <meta property=... content=...>, first occurrence
	itemprops map[string]string // <link itemprop=... content=...>, first occurrence
}

func parseWatchPage(body string) *watchPage {
	page := &watchPage{
		raw:       body,
		meta:      make(map[string]string),
		itemprops: make(map[string]string),
	}

	z := html.NewTokenizer(strings.NewReader(body))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return page
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "meta":
				recordFirst(page.meta, getAttr(tok, "property"), getAttr(tok, "content"))
			case "link":
				recordFirst(page.itemprops, getAttr(tok, "itemprop"), getAttr(tok, "content"))
			}
		}
	}
}

func recordFirst(into map[string]string, key, value string) {
	if key == "" || value == "" {
		return
	}
	if _, seen := into[key]; !seen {
		into[key] = value
	}
}

func getAttr(tok html.Token, key string) string {
	for _, attr := range tok.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// fieldExtractor reads one metadata field from a watch page. Each extractor
// fails on its own; a failure leaves the field untouched.
type fieldExtractor struct {
	field string
	apply func(page *watchPage, md *Metadata) error
}

var watchPageExtractors = []fieldExtractor{
	{"title", metaTag("og:title", func(md *Metadata, v string) { md.Title = v })},
	{"author", itempropLink("name", func(md *Metadata, v string) { md.Author = v })},
	{"description", metaTag("og:description", func(md *Metadata, v string) { md.Description = v })},
	{"duration", embeddedInt(lengthSecondsPattern, strconv.IntSize, func(md *Metadata, n int64) { md.Duration = int(n) })},
	{"views", embeddedInt(viewCountPattern, 64, func(md *Metadata, n int64) { md.Views = n })},
	{"thumbnail_url", metaTag("og:image", func(md *Metadata, v string) { md.ThumbnailURL = v })},
}

func metaTag(property string, set func(*Metadata, string)) func(*watchPage, *Metadata) error {
	return func(page *watchPage, md *Metadata) error {
		v, ok := page.meta[property]
		if !ok {
			return errNoMatch
		}
		set(md, v)
		return nil
	}
}

func itempropLink(itemprop string, set func(*Metadata, string)) func(*watchPage, *Metadata) error {
	return func(page *watchPage, md *Metadata) error {
		v, ok := page.itemprops[itemprop]
		if !ok {
			return errNoMatch
		}
		set(md, v)
		return nil
	}
}

func embeddedInt(pattern *regexp.Regexp, bitSize int, set func(*Metadata, int64)) func(*watchPage, *Metadata) error {
	return func(page *watchPage, md *Metadata) error {
		m := pattern.FindStringSubmatch(page.raw)
		if len(m) < 2 {
			return errNoMatch
		}
		n, err := strconv.ParseInt(m[1], 10, bitSize)
		if err != nil {
			return fmt.Errorf("parse %q: %w", m[1], err)
		}
		set(md, n)
		return nil
	}
}

// applyWatchPage overlays whatever the watch page HTML provides onto md.
func applyWatchPage(ctx context.Context, body string, md *Metadata) {
	logger := logging.FromContext(ctx)
	page := parseWatchPage(body)

	for _, ex := range watchPageExtractors {
		err := ex.apply(page, md)
		switch {
		case err == nil:
		case errors.Is(err, errNoMatch):
			logger.Debug("watch page field not found", "field", ex.field, "videoId", md.VideoID)
		default:
			logger.Warn("watch page field unusable", "field", ex.field, "videoId", md.VideoID, "error", err)
		}
	}
}
