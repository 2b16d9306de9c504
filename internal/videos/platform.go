package videos

import "strings"

// Platform identifies the site hosting a video.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformInstagram Platform = "Instagram"
	PlatformLinkedin  Platform = "Linkedin"
	PlatformFacebook  Platform = "Facebook"
	PlatformTiktok    Platform = "Tiktok"
	PlatformUnknown   Platform = "Unknown"
)

// platformDomains is checked in order; the first matching domain wins.
var platformDomains = []struct {
	domain   string
	platform Platform
}{
	{"youtube.com", PlatformYouTube},
	{"youtu.be", PlatformYouTube},
	{"instagram.com", PlatformInstagram},
	{"linkedin.com", PlatformLinkedin},
	{"facebook.com", PlatformFacebook},
	{"tiktok.com", PlatformTiktok},
}

// ClassifyPlatform determines the hosting platform of the supplied URL by
// looking for known domains. It never fails: anything unrecognised, including
// an empty string, is PlatformUnknown.
func ClassifyPlatform(url string) Platform {
	normalized := strings.ToLower(strings.TrimSpace(url))
	if normalized == "" {
		return PlatformUnknown
	}

	for _, candidate := range platformDomains {
		if strings.Contains(normalized, candidate.domain) {
			return candidate.platform
		}
	}
	return PlatformUnknown
}

// ParsePlatform maps a platform name such as "youtube" or "LinkedIn" onto a
// Platform, returning PlatformUnknown for unrecognised names.
func ParsePlatform(name string) Platform {
	name = strings.TrimSpace(name)
	for _, p := range []Platform{PlatformYouTube, PlatformInstagram, PlatformLinkedin, PlatformFacebook, PlatformTiktok} {
		if strings.EqualFold(name, string(p)) {
			return p
		}
	}
	return PlatformUnknown
}

// String implements fmt.Stringer.
func (p Platform) String() string {
	if p == "" {
		return string(PlatformUnknown)
	}
	return string(p)
}
