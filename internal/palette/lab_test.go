package palette

import (
	"math"
	"testing"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestToLab_KnownValues(t *testing.T) {
	tests := []struct {
		name    string
		rgb     RGB
		wantL   float64
		wantA   float64
		wantB   float64
		epsilon float64
	}{
		{"black", RGB{0, 0, 0}, 0, 0, 0, 0.01},
		{"white", RGB{255, 255, 255}, 100, 0, 0, 0.5},
		{"red", RGB{255, 0, 0}, 53.24, 80.09, 67.20, 0.5},
		{"green", RGB{0, 255, 0}, 87.73, -86.18, 83.18, 0.5},
		{"blue", RGB{0, 0, 255}, 32.30, 79.19, -107.86, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLab(tt.rgb)
			if math.Abs(got.L-tt.wantL) > tt.epsilon ||
				math.Abs(got.A-tt.wantA) > tt.epsilon ||
				math.Abs(got.B-tt.wantB) > tt.epsilon {
				t.Errorf("ToLab(%v) = %+v, want (%.2f, %.2f, %.2f)", tt.rgb, got, tt.wantL, tt.wantA, tt.wantB)
			}
		})
	}
}

func TestLab_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
	}{
		{"pure red", RGB{255, 0, 0}},
		{"pure green", RGB{0, 255, 0}},
		{"pure blue", RGB{0, 0, 255}},
		{"white", RGB{255, 255, 255}},
		{"black", RGB{0, 0, 0}},
		{"mid gray", RGB{128, 128, 128}},
		{"orange", RGB{255, 128, 64}},
		{"dark teal", RGB{10, 90, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromLab(ToLab(tt.rgb))
			if absDiff(got.R, tt.rgb.R) > 2 || absDiff(got.G, tt.rgb.G) > 2 || absDiff(got.B, tt.rgb.B) > 2 {
				t.Errorf("round trip of %v gave %v", tt.rgb, got)
			}
		})
	}
}

func TestLab_RoundTripExhaustiveGray(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := RGB{uint8(v), uint8(v), uint8(v)}
		if got := FromLab(ToLab(c)); got != c {
			t.Fatalf("gray %d round-tripped to %v", v, got)
		}
	}
}

func TestFromLab_ClampsOutOfGamut(t *testing.T) {
	got := FromLab(Lab{L: 150, A: 200, B: -200})
	if got.R != 255 || got.B != 255 {
		t.Errorf("FromLab out of gamut = %v, want clamped channels at 255", got)
	}
	got = FromLab(Lab{L: -20})
	if got != (RGB{0, 0, 0}) {
		t.Errorf("FromLab(negative L) = %v, want black", got)
	}
}

func TestConvertPixels_PreservesOrderAndLength(t *testing.T) {
	buf := &PixelBuffer{
		Width:  3,
		Height: 2,
		Pix: []RGB{
			{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
			{255, 255, 255}, {0, 0, 0}, {255, 0, 0},
		},
	}

	samples := ConvertPixels(buf)
	if len(samples) != buf.Width*buf.Height {
		t.Fatalf("got %d samples, want %d", len(samples), buf.Width*buf.Height)
	}
	for i, p := range buf.Pix {
		if samples[i] != ToLab(p) {
			t.Errorf("sample %d = %+v, want %+v", i, samples[i], ToLab(p))
		}
	}
	if samples[0] != samples[5] {
		t.Error("identical pixels should produce identical samples")
	}
}

func TestLab_DistanceSquared(t *testing.T) {
	a := Lab{L: 1, A: 2, B: 3}
	b := Lab{L: 4, A: 6, B: 3}
	if got := a.DistanceSquared(b); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
	if got := a.DistanceSquared(a); got != 0 {
		t.Errorf("DistanceSquared to self = %v, want 0", got)
	}
}
