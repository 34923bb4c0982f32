package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

func TestRenderSwatch(t *testing.T) {
	colors := []palette.RankedColor{
		{RGB: palette.RGB{R: 255}, Share: 0.5},
		{RGB: palette.RGB{G: 255}, Share: 0.3},
		{RGB: palette.RGB{B: 255}, Share: 0.2},
	}

	img, err := RenderSwatch(colors, 100, 10)
	if err != nil {
		t.Fatalf("RenderSwatch failed: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 10 {
		t.Fatalf("swatch size %v, want 100x10", img.Bounds())
	}

	tests := []struct {
		x    int
		want color.NRGBA
	}{
		{0, color.NRGBA{255, 0, 0, 255}},
		{49, color.NRGBA{255, 0, 0, 255}},
		{50, color.NRGBA{0, 255, 0, 255}},
		{79, color.NRGBA{0, 255, 0, 255}},
		{80, color.NRGBA{0, 0, 255, 255}},
		{99, color.NRGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.NRGBAAt(tt.x, 5); got != tt.want {
			t.Errorf("x=%d: got %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRenderSwatch_Invalid(t *testing.T) {
	one := []palette.RankedColor{{Share: 1}}

	if _, err := RenderSwatch(one, 0, 10); err == nil {
		t.Error("RenderSwatch should reject zero width")
	}
	if _, err := RenderSwatch(one, 10, -1); err == nil {
		t.Error("RenderSwatch should reject negative height")
	}
	if _, err := RenderSwatch(nil, 10, 10); err == nil {
		t.Error("RenderSwatch should reject an empty palette")
	}
}

func TestSwatch(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.Config.Clusters = 4

	result, err := Swatch(createPatternImage(20, 20), opts, 40, 8)
	if err != nil {
		t.Fatalf("Swatch failed: %v", err)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.Width != 40 || result.Height != 8 {
		t.Errorf("size: got %dx%d, want 40x8", result.Width, result.Height)
	}
	if len(result.Colors) != 4 {
		t.Errorf("got %d colours, want 4", len(result.Colors))
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("swatch is not a valid PNG: %v", err)
	}
}

func TestQuantizePreview(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.Config.Clusters = 4

	result, err := QuantizePreview(createPatternImage(12, 8), opts)
	if err != nil {
		t.Fatalf("QuantizePreview failed: %v", err)
	}
	if result.Width != 12 || result.Height != 8 {
		t.Errorf("size: got %dx%d, want 12x8", result.Width, result.Height)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("preview is not a valid PNG: %v", err)
	}

	// Four flat quadrants quantized with four clusters reproduce the input.
	src := createPatternImage(12, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			r1, g1, b1, _ := img.At(x, y).RGBA()
			r2, g2, b2, _ := src.At(x, y).RGBA()
			if r1>>8 != r2>>8 || g1>>8 != g2>>8 || b1>>8 != b2>>8 {
				t.Fatalf("pixel (%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
					x, y, r1>>8, g1>>8, b1>>8, r2>>8, g2>>8, b2>>8)
			}
		}
	}
}

func TestRenderQuantized_SizeMismatch(t *testing.T) {
	res := &palette.Result{
		Colors:   []palette.RankedColor{{Share: 1}},
		Clusters: []palette.Cluster{{Index: 0, Count: 2, Share: 1}},
		Trial:    palette.Trial{Centroids: []palette.Lab{{}}, Assignments: []int{0, 0}},
	}
	if _, err := RenderQuantized(res, 3, 1); err == nil {
		t.Error("RenderQuantized should reject mismatched dimensions")
	}
	if _, err := RenderQuantized(res, 2, 1); err != nil {
		t.Errorf("RenderQuantized failed: %v", err)
	}
}
