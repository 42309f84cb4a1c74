// Package cli provides the command-line interface for ColorPalette.
package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/scanton/ColorPalette/internal/version"
)

var (
	// Global flags
	flagVerbose bool
	flagQuiet   bool

	// logger carries all diagnostic output. The extraction pipeline itself
	// never logs; only the CLI layer does.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "colorpalette",
		Short: "Extract readable color palettes from images",
		Long: `ColorPalette analyses an image and reports its dominant colors: each
swatch carries the share of the image it covers and a black-or-white text
color that stays readable on top of it.

Colors are sampled from the image, grouped into coarse buckets and merged
when they are near-duplicates, so the resulting palette is small and free
of near-identical entries.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger()
		},
	}
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(extractCmd)
}

// newLogger builds the CLI logger honouring the verbosity flags.
func newLogger() hclog.Logger {
	level := hclog.Info
	if flagVerbose {
		level = hclog.Debug
	}
	if flagQuiet {
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorpalette",
		Level:  level,
		Output: os.Stderr,
		Color:  hclog.AutoColor,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
