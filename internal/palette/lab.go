package palette

import "github.com/lucasb-eyer/go-colorful"

// go-colorful reports L in 0..1; scale to the conventional 0..100 range so the
// convergence threshold is expressed in ordinary Lab units.
const labScale = 100.0

// Lab is a CIE L*a*b* colour relative to the D65 white point.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// DistanceSquared returns the squared Euclidean distance between two Lab colours.
func (c Lab) DistanceSquared(o Lab) float64 {
	dl := c.L - o.L
	da := c.A - o.A
	db := c.B - o.B
	return dl*dl + da*da + db*db
}

// ToLab converts an 8-bit sRGB colour to Lab.
//
// Channels are decoded with the standard piecewise sRGB transfer function,
// converted to XYZ and then to Lab using the D65 reference white.
func ToLab(c RGB) Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	return Lab{L: l * labScale, A: a * labScale, B: b * labScale}
}

// ConvertPixels converts every pixel of buf to Lab, preserving order.
func ConvertPixels(buf *PixelBuffer) []Lab {
	samples := make([]Lab, len(buf.Pix))
	for i, p := range buf.Pix {
		samples[i] = ToLab(p)
	}
	return samples
}
