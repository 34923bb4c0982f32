package main

import (
	"fmt"
	"log"

	"github.com/spf13/viper"

	"github.com/ironsheep/image-palette-mcp/internal/imaging"
	"github.com/ironsheep/image-palette-mcp/internal/palette"
	"github.com/ironsheep/image-palette-mcp/internal/server"
)

func debugEnabled(v *viper.Viper) bool {
	return v.GetString("log-level") == "debug"
}

// paletteOptions builds whole-image analysis options from v. In debug mode
// every clustering trial is reported through the standard logger.
func paletteOptions(v *viper.Viper) (imaging.PaletteOptions, error) {
	seed := v.GetInt64("seed")
	if seed < 0 {
		return imaging.PaletteOptions{}, fmt.Errorf("%w: seed must not be negative, got %d",
			palette.ErrInvalidParameter, seed)
	}
	maxDim := v.GetInt("max-dimension")
	if maxDim < 0 {
		return imaging.PaletteOptions{}, fmt.Errorf("%w: max dimension must not be negative, got %d",
			palette.ErrInvalidParameter, maxDim)
	}

	cfg := palette.Config{
		Clusters:             v.GetInt("clusters"),
		Trials:               v.GetInt("trials"),
		MaxIterations:        v.GetInt("max-iterations"),
		ConvergenceThreshold: v.GetFloat64("threshold"),
		Seed:                 uint64(seed),
	}
	if err := cfg.Validate(); err != nil {
		return imaging.PaletteOptions{}, err
	}
	if debugEnabled(v) {
		cfg.Observer = palette.LogObserver(log.Default())
	}
	return imaging.PaletteOptions{Config: cfg, MaxDimension: maxDim}, nil
}

// serverOptions builds the MCP server defaults from v.
func serverOptions(v *viper.Viper) (server.Options, error) {
	opts, err := paletteOptions(v)
	if err != nil {
		return server.Options{}, err
	}
	return server.Options{Palette: opts.Config, MaxDimension: opts.MaxDimension}, nil
}
