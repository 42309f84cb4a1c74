package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	imgutil "github.com/scanton/ColorPalette/internal/image"
	"github.com/scanton/ColorPalette/internal/palette"
)

var (
	// Extract command flags
	extractColors        int
	extractSampleStep    int
	extractThreshold     float64
	extractMaxResolution int
	extractFormat        string
	extractOutput        string
	extractPreview       bool
	extractRefresh       bool
	extractSort          = SortPopulation
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a color palette from an image",
	Long: `Extract the dominant colors of an image together with each color's
population share and a contrast-safe text color.

The image argument may be a local file, a directory (a random image is
picked), or an HTTP(S) URL. Supported formats: JPEG, PNG, GIF, WebP.

Examples:
  # Extract the default 10 colors from an image
  colorpalette extract wallpaper.jpg

  # Extract 5 colors with terminal previews
  colorpalette extract --preview -c 5 wallpaper.png

  # Emit the palette as JSON
  colorpalette extract -f json wallpaper.jpg

  # Keep every near-duplicate (disable merging) and sample every pixel
  colorpalette extract --threshold 0 --sample-step 1 wallpaper.jpg

  # Order the display by hue instead of population
  colorpalette extract --sort hue wallpaper.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	registerExtractFlags(extractCmd.Flags())
}

// registerExtractFlags defines the extract command's flag set.
func registerExtractFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&extractColors, "colors", "c", palette.DefaultPaletteSize, "maximum number of palette colors")
	flags.IntVar(&extractSampleStep, "sample-step", palette.DefaultSampleStep, "sample every n-th pixel")
	flags.Float64Var(&extractThreshold, "threshold", palette.DefaultMergeThreshold, "near-duplicate merge distance in RGB space (<= 0 disables merging)")
	flags.IntVar(&extractMaxResolution, "max-resolution", imgutil.DefaultMaxResolution, "downscale so the longer side does not exceed this many pixels")
	flags.StringVarP(&extractFormat, "format", "f", "table", "output format (hex, rgb, json, table)")
	flags.StringVarP(&extractOutput, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&extractPreview, "preview", false, "show color previews in the terminal")
	flags.BoolVar(&extractRefresh, "refresh", false, "re-download remote images even if cached")
	flags.Var(&extractSort, "sort", "display order (population, hue, luminance)")
}

// runExtract executes the extract command.
func runExtract(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	if err := imgutil.ValidateImagePath(imagePath); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	opts := palette.Options{
		PaletteSize:    extractColors,
		SampleStep:     extractSampleStep,
		MergeThreshold: extractThreshold,
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Directories resolve to a randomly selected contained image.
	resolved, err := imgutil.ResolveImagePath(imagePath)
	if err != nil {
		return fmt.Errorf("failed to resolve image path: %w", err)
	}
	logger.Debug("loading image", "path", resolved)

	loader := imgutil.NewSmartLoader()
	loader.Refresh = extractRefresh
	img, err := loader.Load(resolved)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	logger.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	img = imgutil.Downscale(img, extractMaxResolution)
	if scaled := img.Bounds(); scaled != bounds {
		logger.Debug("image downscaled", "width", scaled.Dx(), "height", scaled.Dy())
	}

	pal, err := palette.FromImage(img, opts)
	if err != nil {
		return fmt.Errorf("failed to extract colors: %w", err)
	}
	logger.Debug("extraction complete", "colors", pal.Len())

	sortSwatches(pal.Swatches, extractSort)

	// Previews only make sense on a terminal.
	showPreview := extractPreview && extractOutput == "" && term.IsTerminal(int(os.Stdout.Fd()))
	output, err := formatPalette(pal, extractFormat, showPreview)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if extractOutput != "" {
		if err := os.WriteFile(extractOutput, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Debug("wrote palette", "path", extractOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}
