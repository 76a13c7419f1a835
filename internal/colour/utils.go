// Package colour provides utility functions for color manipulation and analysis.
package colour

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c color.Color) float64 {
	r, g, b, _ := c.RGBA()
	// Convert from 16-bit to 8-bit.
	rf := float64(r>>8) / 255.0
	rg := float64(g>>8) / 255.0
	rb := float64(b>>8) / 255.0

	return 0.2126*gammaCorrect(rf) + 0.7152*gammaCorrect(rg) + 0.0722*gammaCorrect(rb)
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 color.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HSL returns hue (0-360), saturation (0-1) and lightness (0-1).
// Achromatic colours report a hue and saturation of zero.
func (rgb RGB) HSL() (h, s, l float64) {
	return rgb.Colorful().Hsl()
}

// Lightness returns the HSL lightness of the colour (0-1).
func (rgb RGB) Lightness() float64 {
	_, _, l := rgb.HSL()
	return l
}

// IsAchromatic reports whether the colour is a pure grey (including black
// and white) and therefore has no meaningful hue.
func (rgb RGB) IsAchromatic() bool {
	return rgb.R == rgb.G && rgb.G == rgb.B
}

// FromHSL converts HSL to RGB.
// h is hue in degrees and is wrapped into [0, 360); s and l are clamped to [0, 1].
func FromHSL(h, s, l float64) RGB {
	return FromColorful(colorful.Hsl(WrapHue(h), Clamp01(s), Clamp01(l)))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

// WrapHue wraps a hue in degrees into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// AdjustLightness shifts the lightness of a colour by delta.
// delta > 0 makes the color lighter, delta < 0 makes it darker.
// Saturation is raised by satBoost unless the colour is achromatic, which
// has no hue to saturate. Both components are clamped to [0.0, 1.0].
func AdjustLightness(c RGB, delta, satBoost float64) RGB {
	h, s, l := c.HSL()
	if !c.IsAchromatic() {
		s = Clamp01(s + satBoost)
	}
	return FromHSL(h, s, Clamp01(l+delta))
}
