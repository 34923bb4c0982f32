package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

// ImageResult contains a rendered image as base64-encoded PNG.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func encodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func toNRGBA(c palette.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RenderSwatch draws colors as a horizontal strip, left to right, each band
// as wide as its share of width. Band edges are rounded from cumulative
// shares so the bands tile the strip without gaps; any width not covered by
// the shares stays transparent.
func RenderSwatch(colors []palette.RankedColor, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("swatch size must be positive, got %dx%d", width, height)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("swatch needs at least one colour")
	}

	dst := imaging.New(width, height, color.Transparent)
	var cum float64
	x0 := 0
	for _, c := range colors {
		cum += c.Share
		x1 := int(cum*float64(width) + 0.5)
		if x1 > width {
			x1 = width
		}
		if x1 > x0 {
			band := imaging.New(x1-x0, height, toNRGBA(c.RGB))
			dst = imaging.Paste(dst, band, image.Pt(x0, 0))
			x0 = x1
		}
	}
	return dst, nil
}

// SwatchResult is a rendered palette strip plus the palette it shows.
type SwatchResult struct {
	ImageResult
	Colors []PaletteEntry `json:"colors"`
}

// Swatch analyzes img and renders its palette as a PNG strip of the given size.
func Swatch(img image.Image, opts PaletteOptions, width, height int) (*SwatchResult, error) {
	res, buf, err := analyzeImage(img, opts)
	if err != nil {
		return nil, err
	}

	strip, err := RenderSwatch(res.Colors, width, height)
	if err != nil {
		return nil, err
	}
	encoded, err := encodePNG(strip)
	if err != nil {
		return nil, err
	}

	result := newDominantColorsResult(res, buf)
	return &SwatchResult{ImageResult: *encoded, Colors: result.Colors}, nil
}

// RenderQuantized redraws the analyzed pixels with every pixel replaced by
// the palette colour of its cluster.
func RenderQuantized(res *palette.Result, width, height int) (*image.NRGBA, error) {
	labels := res.Labels()
	if len(labels) != width*height {
		return nil, fmt.Errorf("result covers %d pixels, want %dx%d", len(labels), width, height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, l := range labels {
		c := res.Colors[l].RGB
		off := i * 4
		dst.Pix[off] = c.R
		dst.Pix[off+1] = c.G
		dst.Pix[off+2] = c.B
		dst.Pix[off+3] = 255
	}
	return dst, nil
}

// PreviewResult is a quantized rendering of an image plus the palette used.
type PreviewResult struct {
	ImageResult
	Colors []PaletteEntry `json:"colors"`
}

// QuantizePreview analyzes img and returns it redrawn with its own palette,
// which shows at a glance how each pixel was clustered. The preview has the
// size of the analyzed pixels, after region cropping and downscaling.
func QuantizePreview(img image.Image, opts PaletteOptions) (*PreviewResult, error) {
	res, buf, err := analyzeImage(img, opts)
	if err != nil {
		return nil, err
	}

	quantized, err := RenderQuantized(res, buf.Width, buf.Height)
	if err != nil {
		return nil, err
	}
	encoded, err := encodePNG(quantized)
	if err != nil {
		return nil, err
	}

	result := newDominantColorsResult(res, buf)
	return &PreviewResult{ImageResult: *encoded, Colors: result.Colors}, nil
}
