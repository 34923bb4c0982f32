package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-palette-mcp/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the palette tools over MCP on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	opts, err := serverOptions(v)
	if err != nil {
		return err
	}

	if debugEnabled(v) {
		log.Printf("Image Palette MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Defaults: %d clusters, %d trials, %d iterations, threshold %g, seed %d, max dimension %d",
			opts.Palette.Clusters, opts.Palette.Trials, opts.Palette.MaxIterations,
			opts.Palette.ConvergenceThreshold, opts.Palette.Seed, opts.MaxDimension)
	}

	srv := server.NewWithOptions(opts)
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		return err
	}
	return nil
}
