package server

import (
	"github.com/ironsheep/image-palette-mcp/internal/imaging"
)

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// Default swatch strip size in pixels.
const (
	defaultSwatchWidth  = 400
	defaultSwatchHeight = 40
)

// clusteringProperties returns the schema of the arguments every palette
// tool accepts, with defaults taken from opts.
func clusteringProperties(opts Options) map[string]interface{} {
	cfg := opts.Palette
	return map[string]interface{}{
		"clusters": map[string]interface{}{
			"type":        "integer",
			"description": "Maximum number of colors to extract (k-means K)",
			"default":     cfg.Clusters,
		},
		"trials": map[string]interface{}{
			"type":        "integer",
			"description": "Number of independently seeded clustering runs; the lowest-distortion run wins",
			"default":     cfg.Trials,
		},
		"max_iterations": map[string]interface{}{
			"type":        "integer",
			"description": "Iteration cap per clustering run",
			"default":     cfg.MaxIterations,
		},
		"threshold": map[string]interface{}{
			"type":        "number",
			"description": "Convergence threshold: total squared centroid movement in Lab units",
			"default":     cfg.ConvergenceThreshold,
		},
		"seed": map[string]interface{}{
			"type":        "integer",
			"description": "Base random seed; run i uses seed+i. Equal inputs and seeds give identical palettes",
			"default":     cfg.Seed,
		},
	}
}

// imageProperties adds the file, region and downscale arguments to the
// clustering arguments.
func imageProperties(opts Options) map[string]interface{} {
	props := clusteringProperties(opts)
	props["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
	props["region"] = map[string]interface{}{
		"type":        "object",
		"description": "Optional region to analyze. If omitted, analyzes the entire image.",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{"type": "integer"},
			"y1": map[string]interface{}{"type": "integer"},
			"x2": map[string]interface{}{"type": "integer"},
			"y2": map[string]interface{}{"type": "integer"},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
	props["quadrant"] = map[string]interface{}{
		"type":        "string",
		"enum":        imaging.NamedRegions,
		"description": "Optional named region to analyze instead of an explicit rectangle",
	}
	props["max_dimension"] = map[string]interface{}{
		"type":        "integer",
		"description": "Downscale so neither side exceeds this many pixels before clustering. 0 analyzes every pixel",
		"default":     opts.MaxDimension,
	}
	return props
}

// GetToolDefinitions returns all available tools with the stock defaults
func GetToolDefinitions() []Tool {
	return toolDefinitions(DefaultOptions())
}

func toolDefinitions(opts Options) []Tool {
	swatchProps := imageProperties(opts)
	swatchProps["width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Swatch width in pixels",
		"default":     defaultSwatchWidth,
	}
	swatchProps["height"] = map[string]interface{}{
		"type":        "integer",
		"description": "Swatch height in pixels",
		"default":     defaultSwatchHeight,
	}

	bytesProps := clusteringProperties(opts)
	bytesProps["data"] = map[string]interface{}{
		"type":        "string",
		"description": "Base64-encoded image file contents (PNG, JPEG, GIF, WebP, BMP or TIFF)",
	}

	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and pixel count. The decoded image is cached for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Palette Operations
		{
			Name:        "image_dominant_colors",
			Description: "Extract the dominant colors of an image or region by k-means clustering in CIE Lab space. Colors are ranked by the share of pixels they represent; at most 'clusters' colors are returned.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": imageProperties(opts),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_palette_from_bytes",
			Description: "Extract the dominant colors of an image passed inline as base64 data. Every pixel is analyzed.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": bytesProps,
				"required":   []string{"data"},
			},
		},
		{
			Name:        "image_palette_swatch",
			Description: "Render the dominant colors of an image as a PNG strip, each band as wide as the color's share. Returns the base64 PNG and the palette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": swatchProps,
				"required":   []string{"path"},
			},
		},
		{
			Name:        "image_quantize_preview",
			Description: "Redraw an image with every pixel replaced by its dominant color, showing how the palette partitions the image. Returns a base64 PNG and the palette.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": imageProperties(opts),
				"required":   []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": toolDefinitions(s.opts),
		},
	}
}
