package colour

import (
	"fmt"
	"math"
)

// Adjustments describes offsets applied to a base colour by Modify.
// Lightness and Saturation are percentage points (-100 to 100), Hue is a
// rotation in degrees and Opacity a percentage (0 to 100).
type Adjustments struct {
	Lightness  int `json:"lightness"`
	Saturation int `json:"saturation"`
	Hue        int `json:"hue"`
	Opacity    int `json:"opacity"`
}

// NoAdjustments returns the identity adjustment (fully opaque, no offsets).
func NoAdjustments() Adjustments {
	return Adjustments{Opacity: 100}
}

// Normalise clamps every field into its valid range and wraps the hue.
func (a Adjustments) Normalise() Adjustments {
	return Adjustments{
		Lightness:  clampInt(a.Lightness, -100, 100),
		Saturation: clampInt(a.Saturation, -100, 100),
		Hue:        ((a.Hue % 360) + 360) % 360,
		Opacity:    clampInt(a.Opacity, 0, 100),
	}
}

// Modified is the outcome of applying Adjustments to a colour.
type Modified struct {
	Original    RGB         `json:"original"`
	Result      RGB         `json:"result"`
	Opacity     float64     `json:"opacity"`
	Adjustments Adjustments `json:"adjustments"`
}

// Modify applies adj to base in HSL space.
func Modify(base RGB, adj Adjustments) Modified {
	adj = adj.Normalise()

	h, s, l := base.HSL()
	newH := WrapHue(h + float64(adj.Hue))
	newS := math.Max(0, math.Min(100, s*100+float64(adj.Saturation)))
	newL := math.Max(0, math.Min(100, l*100+float64(adj.Lightness)))

	return Modified{
		Original:    base,
		Result:      FromHSL(newH, newS/100, newL/100),
		Opacity:     float64(adj.Opacity) / 100,
		Adjustments: adj,
	}
}

// IsTranslucent reports whether the result carries an opacity below 1.
func (m Modified) IsTranslucent() bool {
	return m.Opacity < 1
}

// CSS returns copyable codes for the result: hex, rgb() and, when
// translucent, rgba().
func (m Modified) CSS() []string {
	rgb := m.Result
	codes := []string{
		rgb.Hex(),
		rgb.String(),
	}
	if m.IsTranslucent() {
		codes = append(codes, fmt.Sprintf("rgba(%d, %d, %d, %.2f)", rgb.R, rgb.G, rgb.B, m.Opacity))
	}
	return codes
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
