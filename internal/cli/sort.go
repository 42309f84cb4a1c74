package cli

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/scanton/ColorPalette/internal/palette"
)

// SortMode selects the display ordering of an extracted palette. Extraction
// always produces population-descending order; the other modes only reorder
// what is shown.
type SortMode string

const (
	SortPopulation SortMode = "population"
	SortHue        SortMode = "hue"
	SortLuminance  SortMode = "luminance"
)

// String implements pflag.Value.
func (m *SortMode) String() string { return string(*m) }

// Set implements pflag.Value.
func (m *SortMode) Set(value string) error {
	switch SortMode(value) {
	case SortPopulation, SortHue, SortLuminance:
		*m = SortMode(value)
		return nil
	default:
		return fmt.Errorf("invalid sort mode: %s (valid: population, hue, luminance)", value)
	}
}

// Type implements pflag.Value.
func (m *SortMode) Type() string { return "mode" }

// sortSwatches reorders swatches in place for display. Population order is
// the extraction order and is left untouched. Both sorts are stable so
// equal keys keep their population ranking.
func sortSwatches(swatches []palette.Swatch, mode SortMode) {
	switch mode {
	case SortHue:
		sort.SliceStable(swatches, func(i, j int) bool {
			return displayHue(swatches[i]) < displayHue(swatches[j])
		})
	case SortLuminance:
		sort.SliceStable(swatches, func(i, j int) bool {
			return displayLightness(swatches[i]) > displayLightness(swatches[j])
		})
	}
}

// displayHue returns the HSL hue of a swatch in degrees.
func displayHue(s palette.Swatch) float64 {
	c, err := colorful.Hex(s.Hex)
	if err != nil {
		return 0
	}
	h, _, _ := c.Hsl()
	return h
}

// displayLightness returns the HSL lightness of a swatch.
func displayLightness(s palette.Swatch) float64 {
	c, err := colorful.Hex(s.Hex)
	if err != nil {
		return 0
	}
	_, _, l := c.Hsl()
	return l
}
