package cli

import (
	"fmt"
	"strings"

	"github.com/scanton/ColorPalette/internal/palette"
)

// formatPalette formats the palette according to the specified format.
// Previews apply to the hex and rgb formats only.
func formatPalette(pal *palette.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(pal, showPreview), nil
	case "rgb":
		return formatRGB(pal, showPreview), nil
	case "json":
		jsonBytes, err := pal.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case "table":
		return formatTable(pal), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json, table)", format)
	}
}

// formatHex formats the palette as one hex color code per line.
func formatHex(pal *palette.Palette, showPreview bool) string {
	var b strings.Builder
	for _, s := range pal.Swatches {
		if showPreview {
			if rgb, err := palette.ParseHex(s.Hex); err == nil {
				b.WriteString(palette.ColorPreview(rgb, 8))
				b.WriteString("  ")
			}
		}
		b.WriteString(s.Hex)
		b.WriteString("\n")
	}
	return b.String()
}

// formatRGB formats the palette as one rgb(r, g, b) value per line.
func formatRGB(pal *palette.Palette, showPreview bool) string {
	var b strings.Builder
	for _, s := range pal.Swatches {
		rgb, err := palette.ParseHex(s.Hex)
		if err != nil {
			continue
		}
		if showPreview {
			b.WriteString(palette.ColorPreview(rgb, 8))
			b.WriteString("  ")
		}
		b.WriteString(rgb.String())
		b.WriteString("\n")
	}
	return b.String()
}

// formatTable formats the palette as an aligned table with population and
// share columns.
func formatTable(pal *palette.Palette) string {
	if pal.Len() == 0 {
		return "Empty palette\n"
	}

	t := NewTable([]string{"Color", "Text", "Population", "Share"})
	for _, s := range pal.Swatches {
		t.AddRow([]string{
			s.Hex,
			s.TextColor,
			fmt.Sprintf("%d", s.Population),
			fmt.Sprintf("%.1f%%", s.Percentage*100),
		})
	}
	return t.Render()
}
