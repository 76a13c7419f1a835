// Package colour provides colour parsing, conversion and WCAG contrast helpers.
package colour

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a string is not a #RRGGBB colour.
var ErrInvalidHex = errors.New("invalid format, use #RRGGBB")

// RGB represents an opaque 8-bit sRGB colour.
// Values are immutable; every adjustment returns a new RGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Common reference colours.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// RGBA implements image/color.Color so an RGB can be passed anywhere the
// standard library expects a colour.
func (rgb RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(rgb.R) * 0x101
	g = uint32(rgb.G) * 0x101
	b = uint32(rgb.B) * 0x101
	a = 0xffff
	return
}

// String returns the RGB color as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// MarshalText encodes the colour as its hex string.
func (rgb RGB) MarshalText() ([]byte, error) {
	return []byte(rgb.Hex()), nil
}

// UnmarshalText decodes a hex string produced by MarshalText.
func (rgb *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*rgb = parsed
	return nil
}

// IsValidHex reports whether s is exactly '#' followed by six hex digits.
// Matching is case-insensitive.
func IsValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormaliseHex trims whitespace and adds a missing '#' prefix.
// It does not validate the result.
func NormaliseHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// ParseHex parses a six digit hex colour. The leading '#' is optional.
func ParseHex(s string) (RGB, error) {
	hex := NormaliseHex(s)
	if !IsValidHex(hex) {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}

	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidHex)
	}
	return FromColorful(c), nil
}

// MustParseHex is like ParseHex but panics on error.
// Intended for constants and tests.
func MustParseHex(s string) RGB {
	rgb, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return rgb
}

// FromColorful converts a go-colorful colour to RGB, clamping out of gamut
// values and rounding to the nearest 8-bit channel value.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Colorful returns the colour as a go-colorful value.
func (rgb RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
}
