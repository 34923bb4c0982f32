// Package server implements the MCP (Model Context Protocol) server for the
// palette tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Palette Operations:
//   - image_dominant_colors: Ranked palette of a file or region
//   - image_palette_from_bytes: Ranked palette of base64 image data
//   - image_palette_swatch: Palette rendered as a PNG strip
//   - image_quantize_preview: Image redrawn with its own palette
//
// Every palette tool accepts clusters, trials, max_iterations, threshold and
// seed; omitted arguments fall back to the server's Options. Equal inputs
// and arguments always produce the same palette.
//
// # Image Caching
//
// Images are decoded once and cached by path for the lifetime of the server
// process.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors:
//   - -32602: malformed params or an out-of-range analysis parameter
//   - -32000: any other tool failure (unreadable file, undecodable image)
//   - -32601: unknown method
//   - -32700: a request line that is not JSON
//
// The data field carries the Go error string.
//
// # Usage
//
//	srv := server.NewWithOptions(server.DefaultOptions())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
