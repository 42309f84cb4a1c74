// ColorPalette - dominant color extraction for images
//
// ColorPalette samples an image, clusters similar colors and reports each
// dominant color with its population share and a contrast-safe text color.
package main

import "github.com/scanton/ColorPalette/internal/cli"

func main() {
	cli.Execute()
}
