package palette

import "math"

// Text colors returned by BestTextColor.
const (
	TextBlack = "#000000"
	TextWhite = "#FFFFFF"
)

// Luminance calculates the relative luminance of a color according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c RGB) float64 {
	r := gammaCorrect(float64(c.R) / 255.0)
	g := gammaCorrect(float64(c.G) / 255.0)
	b := gammaCorrect(float64(c.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies gamma correction to a color component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two relative
// luminances according to WCAG 2.0. Returns a value between 1 and 21, where
// 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(l1, l2 float64) float64 {
	// Ensure l1 is the lighter luminance.
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// BestTextColor returns white or black, whichever reads better on top of the
// given background color. White wins ties.
func BestTextColor(c RGB) string {
	bg := Luminance(c)
	whiteContrast := ContrastRatio(1.0, bg)
	blackContrast := ContrastRatio(bg, 0.0)

	if whiteContrast >= blackContrast {
		return TextWhite
	}
	return TextBlack
}
