package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/contrastfix/internal/colour"
)

// Named WCAG targets accepted by ParseTarget.
var levels = []struct {
	name    string
	aliases []string
	ratio   float64
}{
	{"AA Large", []string{"aa-large", "aalarge", "large"}, colour.ContrastAALarge},
	{"AA", []string{"aa"}, colour.ContrastAA},
	{"AAA", []string{"aaa"}, colour.ContrastAAA},
}

// ParseTarget parses a WCAG level name (aa-large, aa, aaa) or a plain
// ratio such as "4.5" or "4.5:1".
func ParseTarget(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, lvl := range levels {
		for _, alias := range lvl.aliases {
			if v == alias {
				return lvl.ratio, nil
			}
		}
	}

	ratio, err := strconv.ParseFloat(strings.TrimSuffix(v, ":1"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target %q (valid: aa-large, aa, aaa or a ratio): %w", s, ErrInvalidTarget)
	}
	if err := ValidateTarget(ratio); err != nil {
		return 0, err
	}
	return ratio, nil
}

// ValidateTarget checks that ratio is a finite positive number.
func ValidateTarget(ratio float64) error {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return fmt.Errorf("%v: %w", ratio, ErrInvalidTarget)
	}
	return nil
}

// LevelName returns the WCAG level name for ratio, or the ratio formatted
// as "N:1" when it is not one of the named levels.
func LevelName(ratio float64) string {
	for _, lvl := range levels {
		if lvl.ratio == ratio {
			return lvl.name
		}
	}
	return strconv.FormatFloat(ratio, 'f', -1, 64) + ":1"
}
