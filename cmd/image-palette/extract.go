package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flosch/pongo2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-palette-mcp/internal/imaging"
)

var (
	extractJSON     bool
	extractTemplate string
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print the dominant colours of an image",
	Long: `Print the dominant colours of an image, most common first.

The default output is one line per colour: its hex value and share of the
image. --json prints the full report. --template renders the report through a
pongo2 (Django syntax) template, e.g. to generate a theme or CSS variables:

  {% for c in colors %}--color-{{ forloop.Counter }}: {{ c.Hex }};
  {% endfor %}

The template context holds file, width, height, samples and colors; each
colour has Hex, RGB (R, G, B), HSL (H, S, L), Share and Percentage.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print the palette as JSON")
	extractCmd.Flags().StringVar(&extractTemplate, "template", "", "render the palette through a pongo2 template file")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractJSON && extractTemplate != "" {
		return fmt.Errorf("--json and --template are mutually exclusive")
	}

	opts, err := paletteOptions(viper.GetViper())
	if err != nil {
		return err
	}

	// Parse the template before the potentially slow analysis.
	var tpl *pongo2.Template
	if extractTemplate != "" {
		tpl, err = pongo2.FromFile(extractTemplate)
		if err != nil {
			return fmt.Errorf("loading template %s: %w", extractTemplate, err)
		}
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	decoded, err := imaging.DecodeImage(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	result, err := imaging.DominantColors(decoded.Image, opts)
	if err != nil {
		return fmt.Errorf("analyzing %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	switch {
	case extractJSON:
		return writeJSON(out, result)
	case tpl != nil:
		return writeTemplate(out, tpl, path, result)
	default:
		return writeText(out, result)
	}
}

// writeText prints one "#rrggbb  share%" line per colour.
func writeText(w io.Writer, result *imaging.DominantColorsResult) error {
	for _, c := range result.Colors {
		if _, err := fmt.Fprintf(w, "%s  %6.2f%%\n", c.Hex, c.Percentage); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w io.Writer, result *imaging.DominantColorsResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func writeTemplate(w io.Writer, tpl *pongo2.Template, file string, result *imaging.DominantColorsResult) error {
	return tpl.ExecuteWriter(pongo2.Context{
		"file":    file,
		"width":   result.Width,
		"height":  result.Height,
		"samples": result.Samples,
		"colors":  result.Colors,
	}, w)
}
