// Package palette extracts a compact dominant-color palette from raw RGBA
// pixel data by sampling, quantized bucketing and near-duplicate merging.
package palette

import (
	"encoding/json"
	"fmt"
)

// RGB represents a color in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB color as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex parses a "#rrggbb" hex color string into an RGB value.
func ParseHex(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex color: %q", hex)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Swatch is a single entry of an extracted palette: the averaged color of a
// cluster together with how much of the sampled image it covers and a text
// color that stays readable on top of it.
type Swatch struct {
	// Hex is the swatch color as "#rrggbb" (lowercase).
	Hex string `json:"hex"`

	// TextColor is "#000000" or "#FFFFFF", whichever contrasts better
	// against the swatch color.
	TextColor string `json:"textColor"`

	// Population is the number of sampled pixels the swatch represents.
	Population int `json:"population"`

	// Percentage is the swatch's share of all sampled pixels, in [0, 1].
	Percentage float64 `json:"percentage"`
}

// Palette is an ordered collection of swatches, most populous first.
type Palette struct {
	Swatches []Swatch
}

// NewPalette creates a new Palette with the given swatches.
func NewPalette(swatches []Swatch) *Palette {
	return &Palette{
		Swatches: swatches,
	}
}

// Len returns the number of swatches in the palette.
func (p *Palette) Len() int {
	return len(p.Swatches)
}

// ToHex returns the swatch colors as hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Swatches))
	for i, s := range p.Swatches {
		hexColors[i] = s.Hex
	}
	return hexColors
}

// PaletteJSON represents the palette in JSON output format.
type PaletteJSON struct {
	Count  int      `json:"count"`
	Colors []Swatch `json:"colors"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	paletteJSON := PaletteJSON{
		Count:  len(p.Swatches),
		Colors: p.Swatches,
	}
	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Swatches) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colors:\n", len(p.Swatches))
	for i, s := range p.Swatches {
		result += fmt.Sprintf("  %2d: %s (%d pixels, %.1f%%)\n", i+1, s.Hex, s.Population, s.Percentage*100)
	}
	return result
}

// Get returns the swatch at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Swatch, error) {
	if index < 0 || index >= len(p.Swatches) {
		return Swatch{}, fmt.Errorf("index out of bounds: %d (palette has %d colors)", index, len(p.Swatches))
	}
	return p.Swatches[index], nil
}

// All returns an iterator over all swatches in the palette.
func (p *Palette) All() func(func(int, Swatch) bool) {
	return func(yield func(int, Swatch) bool) {
		for i, s := range p.Swatches {
			if !yield(i, s) {
				return
			}
		}
	}
}
