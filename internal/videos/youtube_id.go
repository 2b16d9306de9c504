package videos

import (
	"net/url"
	"regexp"
	"strings"
)

// youtubeIDPatterns are tried in priority order and the first match wins.
// Identifiers end at whitespace or at a URL delimiter.
var youtubeIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/|youtube\.com/v/|youtube\.com/e/|youtube\.com/watch\?.*v=|youtube\.com/watch\?.*&v=)([^\s&#?/]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([^\s&#?/]+)`),
}

// ExtractYouTubeID locates the video identifier inside a YouTube URL. Watch,
// short-link, embed and shorts URLs are supported. The boolean is false when
// no identifier could be found; callers decide whether that is fatal.
func ExtractYouTubeID(rawURL string) (string, bool) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", false
	}
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "https://" + rawURL
	}

	for _, pattern := range youtubeIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); len(m) > 1 {
			return m[1], true
		}
	}

	return youtubeIDFromParsedURL(rawURL)
}

func youtubeIDFromParsedURL(rawURL string) (string, bool) {
	parsed, err := url.Parse(rawURL)
	if err != nil || !strings.Contains(parsed.Host, "youtube.com") {
		return "", false
	}

	switch {
	case strings.Contains(parsed.Path, "watch"):
		if v := parsed.Query().Get("v"); v != "" {
			return v, true
		}
	case strings.Contains(parsed.Path, "shorts"):
		segments := strings.Split(parsed.Path, "/")
		for i, segment := range segments {
			if segment == "shorts" && i+1 < len(segments) && segments[i+1] != "" {
				return segments[i+1], true
			}
		}
	}
	return "", false
}
