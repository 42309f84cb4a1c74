package palette

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colors.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColorPreview returns an ANSI-colored preview string for a color.
// Width specifies how many characters wide the color block should be.
// Uses background color with spaces for a solid block.
func ColorPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColor := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColor + block + ansiReset
}

// ColorPreviewWithText returns a color preview with text overlay. The text
// color is the same black-or-white choice the extraction pipeline attaches
// to swatches.
func ColorPreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	var fgR, fgG, fgB uint8
	if BestTextColor(c) == TextWhite {
		fgR, fgG, fgB = 255, 255, 255
	}

	bgColor := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColor := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColor + fgColor + displayText + ansiReset
}
