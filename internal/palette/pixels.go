package palette

import "fmt"

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R uint8 `json:"red"`
	G uint8 `json:"green"`
	B uint8 `json:"blue"`
}

// PixelBuffer holds decoded pixels in row-major order.
//
// Len(Pix) must equal Width*Height. A PixelBuffer is treated as read-only by
// every function in this package.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []RGB
}

// Len returns the number of pixels in the buffer.
func (b *PixelBuffer) Len() int {
	return len(b.Pix)
}

// Validate reports whether the dimensions agree with the pixel slice.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil pixel buffer", ErrInvalidParameter)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidParameter, b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("%w: %dx%d buffer holds %d pixels, want %d",
			ErrInvalidParameter, b.Width, b.Height, len(b.Pix), b.Width*b.Height)
	}
	return nil
}
