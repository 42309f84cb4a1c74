// Test image generator for creating sample images for palette extraction
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	// A 2x4 grid of color blocks with a near-duplicate pair so quantization
	// and merging both have work to do, plus one transparent block that
	// extraction must ignore.
	width := 400
	height := 400
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	colors := []color.NRGBA{
		{R: 255, G: 0, B: 0, A: 255},     // Red
		{R: 250, G: 8, B: 4, A: 255},     // Near-duplicate red
		{R: 0, G: 255, B: 0, A: 255},     // Green
		{R: 0, G: 0, B: 255, A: 255},     // Blue
		{R: 255, G: 255, B: 0, A: 255},   // Yellow
		{R: 128, G: 128, B: 128, A: 255}, // Gray
		{R: 255, G: 128, B: 0, A: 255},   // Orange
		{A: 0},                           // Fully transparent
	}

	blockWidth := width / 2
	blockHeight := height / 4

	colorIndex := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			c := colors[colorIndex]
			colorIndex++

			for y := row * blockHeight; y < (row+1)*blockHeight; y++ {
				for x := col * blockWidth; x < (col+1)*blockWidth; x++ {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png")
}
