package thumbnails

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Concept describes the thumbnail a caller wants: what it shows, the text
// drawn over it, its mood and its palette (hex colours, first is primary).
type Concept struct {
	Concept     string   `json:"concept"`
	TextOverlay string   `json:"text_overlay"`
	FocalPoint  string   `json:"focal_point"`
	Tone        string   `json:"tone"`
	Colors      []string `json:"colors,omitempty"`
}

var (
	defaultGradientColors = []string{"#3366CC", "#FFFFFF", "#FF5555"}

	fallbackTop    = color.RGBA{R: 51, G: 102, B: 204, A: 255}
	fallbackBottom = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	white          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// MainColor returns the primary palette entry, "#FFFFFF" when there is none.
func (c Concept) MainColor() string {
	if len(c.Colors) > 0 && strings.TrimSpace(c.Colors[0]) != "" {
		return c.Colors[0]
	}
	return "#FFFFFF"
}

// gradientColors picks the two gradient stops. An unparsable palette falls
// back to blue over white.
func (c Concept) gradientColors() (color.RGBA, color.RGBA) {
	colors := c.Colors
	if colors == nil {
		colors = defaultGradientColors
	}
	for len(colors) < 2 {
		colors = append(colors[:len(colors):len(colors)], "#FFFFFF")
	}

	top, err := parseHexColor(colors[0])
	if err != nil {
		return fallbackTop, fallbackBottom
	}
	bottom, err := parseHexColor(colors[1])
	if err != nil {
		return fallbackTop, fallbackBottom
	}
	return top, bottom
}

func parseHexColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("hex colour %q: want 6 digits", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("hex colour %q: %w", hex, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
