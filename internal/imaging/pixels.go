package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

// PixelsFromImage flattens img into a row-major palette.PixelBuffer.
//
// Colour channels are read un-premultiplied and reduced to 8 bits; alpha is
// discarded, so a translucent pixel contributes its straight colour. The
// buffer always holds exactly Dx*Dy pixels of img's bounds.
func PixelsFromImage(img image.Image) *palette.PixelBuffer {
	src := imaging.Clone(img)
	w := src.Rect.Dx()
	h := src.Rect.Dy()

	pix := make([]palette.RGB, 0, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := 0; x < len(row); x += 4 {
			pix = append(pix, palette.RGB{R: row[x], G: row[x+1], B: row[x+2]})
		}
	}

	return &palette.PixelBuffer{Width: w, Height: h, Pix: pix}
}

// Downscale shrinks img so that neither side exceeds maxDimension, keeping the
// aspect ratio. Images already within the limit, and a maxDimension of zero or
// less, are returned unchanged.
func Downscale(img image.Image, maxDimension int) image.Image {
	if maxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDimension && h <= maxDimension {
		return img
	}

	if w >= h {
		h = max(1, h*maxDimension/w)
		w = maxDimension
	} else {
		w = max(1, w*maxDimension/h)
		h = maxDimension
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// DecodePixels decodes raw image bytes into a pixel buffer.
//
// Errors wrap ErrDecode. On success the buffer holds exactly width*height
// pixels of the decoded (and EXIF-oriented) image.
func DecodePixels(data []byte) (*palette.PixelBuffer, error) {
	decoded, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return PixelsFromImage(decoded.Image), nil
}

// ExtractPalette decodes data and returns its ranked palette.
//
// Decode failures wrap ErrDecode; configuration problems wrap
// palette.ErrInvalidParameter. Neither returns a partial result.
func ExtractPalette(data []byte, cfg palette.Config) ([]palette.RankedColor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buf, err := DecodePixels(data)
	if err != nil {
		return nil, err
	}
	return palette.Analyze(buf, cfg)
}
