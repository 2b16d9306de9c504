package thumbnails

import (
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	// DefaultWatermark is stamped in the bottom right corner of every preview.
	DefaultWatermark = "Video seo optimizer"

	overlayFontSize   = 72
	watermarkFontSize = 20
	outlineWidth      = 3
)

var (
	fontsOnce   sync.Once
	boldFont    *opentype.Font
	regularFont *opentype.Font
)

func loadFonts() {
	fontsOnce.Do(func() {
		if f, err := opentype.Parse(gobold.TTF); err == nil {
			boldFont = f
		}
		if f, err := opentype.Parse(goregular.TTF); err == nil {
			regularFont = f
		}
	})
}

// newFace sizes f, falling back to the fixed bitmap face when the font could
// not be parsed.
func newFace(f *opentype.Font, size float64) font.Face {
	if f == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawTextOverlay centres the concept's overlay text, word wrapped to most of
// the canvas width, in the primary colour with a black outline.
func drawTextOverlay(dc *gg.Context, c Concept) {
	loadFonts()
	dc.SetFontFace(newFace(boldFont, overlayFontSize))

	fill, err := parseHexColor(c.MainColor())
	if err != nil {
		fill = white
	}

	w, h := float64(dc.Width()), float64(dc.Height())
	wrap := w * 0.9
	draw := func(x, y float64) {
		dc.DrawStringWrapped(c.TextOverlay, x, y, 0.5, 0.5, wrap, 1.2, gg.AlignCenter)
	}

	dc.SetRGB(0, 0, 0)
	for dx := -outlineWidth; dx <= outlineWidth; dx++ {
		for dy := -outlineWidth; dy <= outlineWidth; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			draw(w/2+float64(dx), h/2+float64(dy))
		}
	}

	dc.SetColor(fill)
	draw(w/2, h/2)
}

func drawWatermark(dc *gg.Context, text string) {
	if text == "" {
		return
	}
	loadFonts()
	dc.SetFontFace(newFace(regularFont, watermarkFontSize))
	dc.SetRGBA255(255, 255, 255, 128)
	dc.DrawStringAnchored(text, float64(dc.Width()-220), float64(dc.Height()-30), 0, 1)
}
