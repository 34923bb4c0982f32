// Package imaging connects image files and bytes to the palette extractor.
//
// It decodes compressed images (PNG, JPEG, GIF, WebP, BMP and TIFF, with
// EXIF orientation applied), flattens them into palette.PixelBuffer values,
// and reports the resulting palettes in forms the MCP tools return: hex,
// RGB, HSL and share per colour, a rendered swatch strip, or a quantized
// preview of the image.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Regions
// are half-open: (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Errors
//
// Undecodable input is reported as ErrDecode; bad analysis parameters are
// reported as palette.ErrInvalidParameter. Both can be tested with
// errors.Is.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless
// and may be called concurrently.
package imaging
