package main

import (
	"errors"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ironsheep/image-palette-mcp/internal/palette"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "image-palette",
	Short: "Extract ranked dominant-colour palettes from images",
	Long: `image-palette clusters the pixels of an image in CIE Lab space and
reports its dominant colours, most common first.

Run without a subcommand it serves the palette tools over MCP (JSON-RPC on
stdin/stdout), which is how MCP clients start it.

Settings come from flags, IMAGE_PALETTE_* environment variables
(IMAGE_PALETTE_MAX_ITERATIONS, IMAGE_PALETTE_LOG_LEVEL, ...) and the YAML
config file, in that order of precedence.`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return initConfig() },
	RunE:              runServe,
}

func init() {
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.image-palette.yaml)")
	flags.String("log-level", "info", "log level; debug also logs every clustering trial")
	flags.IntP("clusters", "k", palette.DefaultClusters, "maximum number of colours to extract")
	flags.IntP("trials", "r", palette.DefaultTrials, "independently seeded clustering runs")
	flags.Int("max-iterations", palette.DefaultMaxIterations, "iteration cap per clustering run")
	flags.Float64("threshold", palette.DefaultConvergenceThreshold, "convergence threshold in squared Lab units")
	flags.Int64("seed", int64(palette.DefaultSeed), "base random seed; run i uses seed+i")
	flags.Int("max-dimension", 0, "downscale so neither side exceeds this before clustering (0 = every pixel)")

	for _, key := range []string{"log-level", "clusters", "trials", "max-iterations", "threshold", "seed", "max-dimension"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			log.Fatalf("binding flag %s: %v", key, err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".image-palette")
	}

	viper.SetEnvPrefix("IMAGE_PALETTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	if debugEnabled(viper.GetViper()) {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}
	return nil
}
