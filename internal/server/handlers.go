package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/image-palette-mcp/internal/imaging"
	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_dominant_colors").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Out-of-range analysis parameters return -32602; any other tool failure
// returns -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if errors.Is(err, palette.ErrInvalidParameter) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Palette Operations
	case "image_dominant_colors":
		return s.handleImageDominantColors(args)
	case "image_palette_from_bytes":
		return s.handleImagePaletteFromBytes(args)
	case "image_palette_swatch":
		return s.handleImagePaletteSwatch(args)
	case "image_quantize_preview":
		return s.handleImageQuantizePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Palette Operation Handlers ===

// clusteringArgs are the optional per-call overrides of the server's
// clustering defaults. Pointers tell an explicit zero, which is rejected,
// apart from an omitted argument.
type clusteringArgs struct {
	Clusters      *int     `json:"clusters"`
	Trials        *int     `json:"trials"`
	MaxIterations *int     `json:"max_iterations"`
	Threshold     *float64 `json:"threshold"`
	Seed          *uint64  `json:"seed"`
}

func (a clusteringArgs) config(base palette.Config) palette.Config {
	cfg := base
	if a.Clusters != nil {
		cfg.Clusters = *a.Clusters
	}
	if a.Trials != nil {
		cfg.Trials = *a.Trials
	}
	if a.MaxIterations != nil {
		cfg.MaxIterations = *a.MaxIterations
	}
	if a.Threshold != nil {
		cfg.ConvergenceThreshold = *a.Threshold
	}
	if a.Seed != nil {
		cfg.Seed = *a.Seed
	}
	return cfg
}

type imagePaletteArgs struct {
	clusteringArgs
	Path   string          `json:"path"`
	Region *imaging.Region `json:"region,omitempty"`

	// Quadrant is a named region; it is ignored when Region is set.
	Quadrant     string `json:"quadrant,omitempty"`
	MaxDimension *int   `json:"max_dimension"`
}

// load fetches the image named by a and resolves the analysis options.
func (s *Server) load(a imagePaletteArgs) (image.Image, imaging.PaletteOptions, error) {
	opts := imaging.PaletteOptions{
		Config:       a.config(s.opts.Palette),
		Region:       a.Region,
		MaxDimension: s.opts.MaxDimension,
	}
	if a.MaxDimension != nil {
		opts.MaxDimension = *a.MaxDimension
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, opts, err
	}

	if opts.Region == nil && a.Quadrant != "" {
		r, err := imaging.NamedRegion(img.Bounds(), a.Quadrant)
		if err != nil {
			return nil, opts, err
		}
		opts.Region = &r
	}
	return img, opts, nil
}

func (s *Server) handleImageDominantColors(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.load(a)
	if err != nil {
		return nil, err
	}
	return imaging.DominantColors(img, opts)
}

type imagePaletteFromBytesArgs struct {
	clusteringArgs
	Data string `json:"data"`
}

// bytesPaletteResult is the palette of an inline image.
type bytesPaletteResult struct {
	Colors []imaging.PaletteEntry `json:"colors"`
}

func (s *Server) handleImagePaletteFromBytes(args json.RawMessage) (interface{}, error) {
	var a imagePaletteFromBytesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image data: %w", err)
	}

	colors, err := imaging.ExtractPalette(data, a.config(s.opts.Palette))
	if err != nil {
		return nil, err
	}

	result := &bytesPaletteResult{Colors: make([]imaging.PaletteEntry, len(colors))}
	for i, c := range colors {
		result.Colors[i] = imaging.NewPaletteEntry(c)
	}
	return result, nil
}

type imagePaletteSwatchArgs struct {
	imagePaletteArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImagePaletteSwatch(args json.RawMessage) (interface{}, error) {
	var a imagePaletteSwatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 {
		a.Width = defaultSwatchWidth
	}
	if a.Height == 0 {
		a.Height = defaultSwatchHeight
	}
	img, opts, err := s.load(a.imagePaletteArgs)
	if err != nil {
		return nil, err
	}
	return imaging.Swatch(img, opts, a.Width, a.Height)
}

func (s *Server) handleImageQuantizePreview(args json.RawMessage) (interface{}, error) {
	var a imagePaletteArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, opts, err := s.load(a)
	if err != nil {
		return nil, err
	}
	return imaging.QuantizePreview(img, opts)
}
