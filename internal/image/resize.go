package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultMaxResolution is the default cap on the longer side of a working
// image before extraction.
const DefaultMaxResolution = 1024

// Downscale returns the image scaled so that its longer side does not exceed
// maxResolution, preserving aspect ratio. Each resulting dimension is
// rounded and floored at 1 pixel. Images already within bounds are returned
// unchanged; maxResolution < 1 disables scaling.
func Downscale(img image.Image, maxResolution int) image.Image {
	if img == nil || maxResolution < 1 {
		return img
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	longer := max(width, height)
	if longer <= maxResolution {
		return img
	}

	scale := float64(maxResolution) / float64(longer)
	dstW := scaledDimension(width, scale)
	dstH := scaledDimension(height, scale)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

// scaledDimension rounds a scaled dimension, flooring at 1 so degenerate
// aspect ratios never collapse to zero.
func scaledDimension(dim int, scale float64) int {
	scaled := int(math.Round(float64(dim) * scale))
	if scaled < 1 {
		return 1
	}
	return scaled
}
