package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantColors(t *testing.T) {
	// Create an image with mostly red, some green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(img, DefaultPaletteOptions())
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	if len(result.Colors) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(result.Colors))
	}
	if result.Colors[0].Hex != "#ff0000" || math.Abs(result.Colors[0].Percentage-80) > 1e-9 {
		t.Errorf("first color = %s at %.2f%%, want #ff0000 at 80%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
	if result.Colors[1].Hex != "#00ff00" || math.Abs(result.Colors[1].Percentage-20) > 1e-9 {
		t.Errorf("second color = %s at %.2f%%, want #00ff00 at 20%%", result.Colors[1].Hex, result.Colors[1].Percentage)
	}
	if result.Samples != 100*100 {
		t.Errorf("Samples: got %d, want %d", result.Samples, 100*100)
	}
}

func TestDominantColors_QuadrantPattern(t *testing.T) {
	img := createPatternImage(40, 40)
	opts := DefaultPaletteOptions()
	opts.Config.Clusters = 4

	result, err := DominantColors(img, opts)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if len(result.Colors) != 4 {
		t.Fatalf("expected 4 colors, got %d", len(result.Colors))
	}

	want := map[string]bool{"#ff0000": true, "#00ff00": true, "#0000ff": true, "#ffffff": true}
	var total float64
	for _, c := range result.Colors {
		if !want[c.Hex] {
			t.Errorf("unexpected color %s", c.Hex)
		}
		if c.Share != 0.25 {
			t.Errorf("%s share = %v, want 0.25", c.Hex, c.Share)
		}
		total += c.Share
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("shares sum to %v, want 1", total)
	}
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	// Sample only the top-left quadrant (red)
	opts := DefaultPaletteOptions()
	opts.Region = &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := DominantColors(img, opts)
	if err != nil {
		t.Fatalf("DominantColors with region failed: %v", err)
	}

	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color in the red quadrant, got %d", len(result.Colors))
	}
	if result.Colors[0].Hex != "#ff0000" || result.Colors[0].Percentage != 100 {
		t.Errorf("expected red at 100%%, got %s at %f%%", result.Colors[0].Hex, result.Colors[0].Percentage)
	}
	if result.Width != 50 || result.Height != 50 || result.Samples != 2500 {
		t.Errorf("analyzed %dx%d (%d samples), want 50x50 (2500)", result.Width, result.Height, result.Samples)
	}
}

func TestDominantColors_RegionOutOfBounds(t *testing.T) {
	img := createPatternImage(20, 20)
	opts := DefaultPaletteOptions()
	opts.Region = &Region{X1: 10, Y1: 10, X2: 30, Y2: 20}

	if _, err := DominantColors(img, opts); err == nil {
		t.Error("DominantColors should fail for a region outside the image")
	}
}

func TestDominantColors_SingleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{128, 128, 128, 255})
	opts := DefaultPaletteOptions()
	opts.Config.Clusters = 3

	result, err := DominantColors(img, opts)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}

	// Should have exactly 1 color since image is uniform
	if len(result.Colors) != 1 {
		t.Fatalf("expected 1 color for uniform image, got %d", len(result.Colors))
	}

	// That color should be 100%
	if result.Colors[0].Percentage != 100 {
		t.Errorf("expected 100%% for single color, got %f%%", result.Colors[0].Percentage)
	}
	if result.Colors[0].RGB != (palette.RGB{R: 128, G: 128, B: 128}) {
		t.Errorf("expected mid gray, got %+v", result.Colors[0].RGB)
	}
}

func TestDominantColors_TooManyClusters(t *testing.T) {
	img := createInMemoryImage(3, 3, color.RGBA{1, 2, 3, 255})
	opts := DefaultPaletteOptions() // 10 clusters for 9 pixels

	_, err := DominantColors(img, opts)
	if !errors.Is(err, palette.ErrInvalidParameter) {
		t.Errorf("DominantColors error = %v, want ErrInvalidParameter", err)
	}
}

func TestDominantColors_MaxDimension(t *testing.T) {
	img := createPatternImage(200, 100)
	opts := DefaultPaletteOptions()
	opts.Config.Clusters = 4
	opts.MaxDimension = 50

	result, err := DominantColors(img, opts)
	if err != nil {
		t.Fatalf("DominantColors failed: %v", err)
	}
	if result.Width != 50 || result.Height != 25 {
		t.Errorf("analyzed %dx%d, want 50x25", result.Width, result.Height)
	}
	if result.Samples != 50*25 {
		t.Errorf("Samples: got %d, want %d", result.Samples, 50*25)
	}
}

func TestDominantColors_NegativeMaxDimension(t *testing.T) {
	opts := DefaultPaletteOptions()
	opts.MaxDimension = -1

	_, err := DominantColors(createPatternImage(20, 20), opts)
	if !errors.Is(err, palette.ErrInvalidParameter) {
		t.Errorf("DominantColors error = %v, want ErrInvalidParameter", err)
	}
}

func TestNewPaletteEntry(t *testing.T) {
	tests := []struct {
		name    string
		rgb     palette.RGB
		wantHex string
		wantH   int
		wantS   int
		wantL   int
	}{
		{"red", palette.RGB{R: 255}, "#ff0000", 0, 100, 50},
		{"green", palette.RGB{G: 255}, "#00ff00", 120, 100, 50},
		{"blue", palette.RGB{B: 255}, "#0000ff", 240, 100, 50},
		{"white", palette.RGB{R: 255, G: 255, B: 255}, "#ffffff", 0, 0, 100},
		{"black", palette.RGB{}, "#000000", 0, 0, 0},
		{"gray", palette.RGB{R: 128, G: 128, B: 128}, "#808080", 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := NewPaletteEntry(palette.RankedColor{RGB: tt.rgb, Share: 0.4})

			if entry.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", entry.Hex, tt.wantHex)
			}
			if entry.Share != 0.4 || math.Abs(entry.Percentage-40) > 1e-9 {
				t.Errorf("share/percentage: got %v/%v, want 0.4/40", entry.Share, entry.Percentage)
			}

			// Allow some tolerance for rounding
			if abs(entry.HSL.H-tt.wantH) > 1 {
				t.Errorf("H: got %d, want %d", entry.HSL.H, tt.wantH)
			}
			if abs(entry.HSL.S-tt.wantS) > 1 {
				t.Errorf("S: got %d, want %d", entry.HSL.S, tt.wantS)
			}
			if abs(entry.HSL.L-tt.wantL) > 1 {
				t.Errorf("L: got %d, want %d", entry.HSL.L, tt.wantL)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
