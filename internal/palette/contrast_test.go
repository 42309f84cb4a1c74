package palette

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  float64
	}{
		{
			name:  "black",
			color: RGB{R: 0, G: 0, B: 0},
			want:  0.0,
		},
		{
			name:  "white",
			color: RGB{R: 255, G: 255, B: 255},
			want:  1.0,
		},
		{
			name:  "pure green",
			color: RGB{R: 0, G: 255, B: 0},
			want:  0.7152,
		},
		{
			name:  "pure red",
			color: RGB{R: 255, G: 0, B: 0},
			want:  0.2126,
		},
		{
			name:  "pure blue",
			color: RGB{R: 0, G: 0, B: 255},
			want:  0.0722,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.color)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Luminance(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	// White vs black is the maximum contrast defined by WCAG.
	if got := ContrastRatio(1.0, 0.0); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("ContrastRatio(1, 0) = %v, want 21", got)
	}

	// Order of arguments must not matter.
	a := ContrastRatio(0.2, 0.7)
	b := ContrastRatio(0.7, 0.2)
	if a != b {
		t.Errorf("ContrastRatio not symmetric: %v != %v", a, b)
	}

	// Identical luminances always give ratio 1.
	if got := ContrastRatio(0.5, 0.5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("ContrastRatio(0.5, 0.5) = %v, want 1", got)
	}
}

func TestBestTextColor(t *testing.T) {
	tests := []struct {
		name  string
		color RGB
		want  string
	}{
		{
			name:  "black background gets white text",
			color: RGB{R: 0, G: 0, B: 0},
			want:  TextWhite,
		},
		{
			name:  "white background gets black text",
			color: RGB{R: 255, G: 255, B: 255},
			want:  TextBlack,
		},
		{
			name:  "pure blue gets white text",
			color: RGB{R: 0, G: 0, B: 255},
			want:  TextWhite,
		},
		{
			name:  "pure green gets black text",
			color: RGB{R: 0, G: 255, B: 0},
			want:  TextBlack,
		},
		{
			name:  "pure red gets black text",
			color: RGB{R: 255, G: 0, B: 0},
			want:  TextBlack,
		},
		{
			name:  "yellow gets black text",
			color: RGB{R: 255, G: 255, B: 0},
			want:  TextBlack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BestTextColor(tt.color); got != tt.want {
				t.Errorf("BestTextColor(%v) = %s, want %s", tt.color, got, tt.want)
			}
		})
	}
}
