package palette

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"sort"
)

// Defaults for extraction options.
const (
	DefaultPaletteSize    = 10
	DefaultSampleStep     = 2
	DefaultMergeThreshold = 50.0

	// MaxPaletteSize caps requested palette sizes at the number of possible
	// quantization buckets.
	MaxPaletteSize = 4096
)

// ErrInvalidInput indicates the caller passed something that is not a valid
// image. No extraction is attempted.
var ErrInvalidInput = errors.New("input is not a valid image")

// Options holds configuration for palette extraction.
type Options struct {
	// PaletteSize is the maximum number of swatches to return. Minimum 1.
	PaletteSize int

	// SampleStep reads every step-th pixel of the buffer. Minimum 1.
	SampleStep int

	// MergeThreshold is the Euclidean RGB distance under which two clusters
	// are considered near-duplicates and merged. A value <= 0 disables
	// merging.
	MergeThreshold float64
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		PaletteSize:    DefaultPaletteSize,
		SampleStep:     DefaultSampleStep,
		MergeThreshold: DefaultMergeThreshold,
	}
}

// Validate validates the extraction options.
func (o Options) Validate() error {
	if o.PaletteSize < 1 {
		return fmt.Errorf("palette size must be at least 1, got %d", o.PaletteSize)
	}
	if o.PaletteSize > MaxPaletteSize {
		return fmt.Errorf("palette size too large: %d (maximum: %d)", o.PaletteSize, MaxPaletteSize)
	}
	if o.SampleStep < 1 {
		return fmt.Errorf("sample step must be at least 1, got %d", o.SampleStep)
	}
	return nil
}

// normalized clamps out-of-range values to their minimums so extraction
// stays total for library callers that skip Validate.
func (o Options) normalized() Options {
	if o.PaletteSize < 1 {
		o.PaletteSize = 1
	}
	if o.SampleStep < 1 {
		o.SampleStep = 1
	}
	return o
}

// Extract runs the full pipeline over an interleaved 8-bit RGBA buffer:
// sample, bucket by quantized color, merge near-duplicates, rank. Given a
// buffer, extraction cannot fail; degenerate inputs (empty buffer, fully
// transparent image) produce an empty palette.
func Extract(pix []byte, opts Options) *Palette {
	opts = opts.normalized()

	buckets := accumulate(samples(pix, opts.SampleStep))
	if len(buckets) == 0 {
		return NewPalette(nil)
	}

	clusters := mergeClusters(finalize(buckets), opts.MergeThreshold)
	return rank(clusters, opts.PaletteSize)
}

// FromImage extracts a palette from a decoded image. The image should
// already be downscaled to a sensible working resolution; extraction itself
// runs over every pixel the sample step selects.
func FromImage(img image.Image, opts Options) (*Palette, error) {
	if img == nil {
		return nil, ErrInvalidInput
	}
	return Extract(rgbaBuffer(img), opts), nil
}

// rank computes population shares, orders clusters most populous first and
// truncates to the requested palette size. The sort is stable: clusters with
// equal population keep their merge-phase order.
func rank(clusters []cluster, size int) *Palette {
	total := 0
	for _, c := range clusters {
		total += c.population
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].population > clusters[j].population
	})
	if len(clusters) > size {
		clusters = clusters[:size]
	}

	swatches := make([]Swatch, len(clusters))
	for i, c := range clusters {
		percentage := 0.0
		if total > 0 {
			percentage = float64(c.population) / float64(total)
		}
		swatches[i] = Swatch{
			Hex:        c.color.Hex(),
			TextColor:  BestTextColor(c.color),
			Population: c.population,
			Percentage: percentage,
		}
	}
	return NewPalette(swatches)
}

// rgbaBuffer renders the image into a non-premultiplied RGBA pixel buffer.
// NRGBA keeps translucent pixels' channel values intact so the sampler's
// alpha cutoff sees the colors the image actually carries.
func rgbaBuffer(img image.Image) []byte {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst.Pix
}
