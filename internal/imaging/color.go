package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
//
// HSL is often more intuitive for color manipulation than RGB:
//   - Hue represents the color type (red, green, blue, etc.)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSLColor struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PaletteEntry is one ranked palette colour in several representations.
type PaletteEntry struct {
	Hex        string      `json:"hex"`        // Hex format "#rrggbb"
	RGB        palette.RGB `json:"rgb"`        // 8-bit sRGB components
	HSL        HSLColor    `json:"hsl"`        // HSL representation
	Share      float64     `json:"share"`      // Fraction of analyzed pixels, 0-1
	Percentage float64     `json:"percentage"` // Share expressed as 0-100
}

// NewPaletteEntry describes a ranked colour.
func NewPaletteEntry(c palette.RankedColor) PaletteEntry {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return PaletteEntry{
		Hex:        col.Hex(),
		RGB:        c.RGB,
		HSL:        toHSL(col),
		Share:      c.Share,
		Percentage: c.Share * 100,
	}
}

// toHSL converts a colour to rounded integer HSL.
func toHSL(c colorful.Color) HSLColor {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// PaletteOptions selects what part of an image is analyzed and how.
type PaletteOptions struct {
	// Config is the clustering configuration.
	Config palette.Config

	// Region restricts analysis to a rectangle. Nil analyzes the whole image.
	Region *Region

	// MaxDimension, when positive, downscales the (cropped) image so neither
	// side exceeds it before clustering. Zero clusters every pixel.
	MaxDimension int
}

// DefaultPaletteOptions returns options for a whole-image analysis with the
// default clustering configuration.
func DefaultPaletteOptions() PaletteOptions {
	return PaletteOptions{Config: palette.DefaultConfig()}
}

// DominantColorsResult contains the ranked palette of an image or region.
//
// Colors are sorted by share in descending order (most dominant first).
type DominantColorsResult struct {
	Colors []PaletteEntry `json:"colors"`

	// Width and Height are the dimensions of the analyzed pixels, after
	// region cropping and downscaling.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Samples is the number of pixels clustered (Width*Height).
	Samples int `json:"samples"`

	// Trial is the index of the winning k-means trial and Score its
	// distortion (sum of squared Lab distances).
	Trial int     `json:"trial"`
	Score float64 `json:"score"`
}

// DominantColors extracts the ranked palette of an image or region.
//
// Pixels are converted to CIE Lab and clustered with k-means over several
// seeded trials (see package palette). The result holds at most
// opts.Config.Clusters colours, fewer when some clusters end up empty.
//
// Returns:
//   - *DominantColorsResult: The palette sorted by share.
//   - error: Non-nil if the region is outside the image or the configuration
//     is invalid (wrapping palette.ErrInvalidParameter).
func DominantColors(img image.Image, opts PaletteOptions) (*DominantColorsResult, error) {
	res, buf, err := analyzeImage(img, opts)
	if err != nil {
		return nil, err
	}
	return newDominantColorsResult(res, buf), nil
}

func newDominantColorsResult(res *palette.Result, buf *palette.PixelBuffer) *DominantColorsResult {
	colors := make([]PaletteEntry, len(res.Colors))
	for i, c := range res.Colors {
		colors[i] = NewPaletteEntry(c)
	}
	return &DominantColorsResult{
		Colors:  colors,
		Width:   buf.Width,
		Height:  buf.Height,
		Samples: buf.Len(),
		Trial:   res.Trial.Index,
		Score:   res.Trial.Score,
	}
}

// analyzeImage crops, downscales and clusters img.
func analyzeImage(img image.Image, opts PaletteOptions) (*palette.Result, *palette.PixelBuffer, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, nil, err
	}
	if opts.MaxDimension < 0 {
		return nil, nil, fmt.Errorf("%w: max dimension must not be negative, got %d",
			palette.ErrInvalidParameter, opts.MaxDimension)
	}

	src, err := cropRegion(img, opts.Region)
	if err != nil {
		return nil, nil, err
	}
	buf := PixelsFromImage(Downscale(src, opts.MaxDimension))

	res, err := palette.AnalyzeDetailed(buf, opts.Config)
	if err != nil {
		return nil, nil, err
	}
	return res, buf, nil
}
