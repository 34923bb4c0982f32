package palette

import "github.com/lucasb-eyer/go-colorful"

// RankedColor is one palette entry: an sRGB colour and the fraction of the
// image assigned to it.
type RankedColor struct {
	RGB
	Share float64 `json:"share"`
}

// FromLab converts a Lab colour back to 8-bit sRGB. Out-of-gamut channels are
// clamped to [0, 255] and rounded to the nearest integer.
func FromLab(c Lab) RGB {
	r, g, b := colorful.Lab(c.L/labScale, c.A/labScale, c.B/labScale).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Encode converts ranked clusters to RankedColor values, keeping their order.
func Encode(clusters []Cluster) []RankedColor {
	out := make([]RankedColor, len(clusters))
	for i, c := range clusters {
		out[i] = RankedColor{RGB: FromLab(c.Centroid), Share: c.Share}
	}
	return out
}
