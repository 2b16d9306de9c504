package thumbnails

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

const (
	// DefaultWidth and DefaultHeight are the preview dimensions (16:9).
	DefaultWidth  = 1280
	DefaultHeight = 720
)

// pattern decorates a background according to the concept's tone.
type pattern func(dc *gg.Context)

// tonePatterns is checked in order; the first tone keyword found applies.
var tonePatterns = []struct {
	keywords []string
	draw     pattern
}{
	{[]string{"professional", "educational"}, drawGrid},
	{[]string{"energetic", "exciting"}, drawDiagonals},
	{[]string{"emotional", "dramatic"}, drawRings},
}

// Background renders a vertical gradient between the concept's first two
// colours, decorated with a pattern matching its tone.
func Background(c Concept, width, height int) image.Image {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}

	dc := gg.NewContext(width, height)
	top, bottom := c.gradientColors()
	gradient := gg.NewLinearGradient(0, 0, 0, float64(height))
	gradient.AddColorStop(0, top)
	gradient.AddColorStop(1, bottom)
	dc.SetFillStyle(gradient)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	if draw := patternFor(c.Tone); draw != nil {
		draw(dc)
	}
	return dc.Image()
}

func patternFor(tone string) pattern {
	tone = strings.ToLower(tone)
	for _, tp := range tonePatterns {
		for _, keyword := range tp.keywords {
			if strings.Contains(tone, keyword) {
				return tp.draw
			}
		}
	}
	return nil
}

func drawGrid(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGBA255(255, 255, 255, 10)
	dc.SetLineWidth(1)
	for x := 0.0; x < w; x += 40 {
		dc.DrawLine(x, 0, x, h)
	}
	for y := 0.0; y < h; y += 40 {
		dc.DrawLine(0, y, w, y)
	}
	dc.Stroke()
}

func drawDiagonals(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGBA255(255, 255, 255, 15)
	dc.SetLineWidth(1)
	for x := -h; x < w+h; x += 60 {
		dc.DrawLine(x, 0, x+h, h)
		dc.DrawLine(x, h, x+h, 0)
	}
	dc.Stroke()
}

func drawRings(dc *gg.Context) {
	w, h := float64(dc.Width()), float64(dc.Height())
	dc.SetRGBA255(255, 255, 255, 20)
	dc.SetLineWidth(1)
	for r := 50.0; r < math.Max(w, h); r += 100 {
		dc.NewSubPath()
		dc.DrawCircle(w/2, h/2, r)
	}
	dc.Stroke()
}
