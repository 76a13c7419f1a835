package colour

// WCAG 2.x contrast thresholds.
const (
	// ContrastAALarge is the minimum ratio for large text at level AA.
	ContrastAALarge = 3.0
	// ContrastAA is the minimum ratio for normal text at level AA.
	ContrastAA = 4.5
	// ContrastAAA is the minimum ratio for normal text at level AAA.
	ContrastAAA = 7.0
)

// Badge is a pass/fail result against a single WCAG level.
type Badge struct {
	Level  string  `json:"level"`
	Ratio  float64 `json:"ratio"`
	Passes bool    `json:"passes"`
}

// String renders the badge as shown next to a contrast readout.
func (b Badge) String() string {
	if b.Passes {
		return "✓ " + b.Level
	}
	return "✗ " + b.Level
}

// Badges evaluates a contrast ratio against AA Large, AA and AAA.
func Badges(ratio float64) []Badge {
	levels := []struct {
		name string
		min  float64
	}{
		{"AA Large", ContrastAALarge},
		{"AA", ContrastAA},
		{"AAA", ContrastAAA},
	}

	badges := make([]Badge, len(levels))
	for i, lvl := range levels {
		badges[i] = Badge{Level: lvl.name, Ratio: lvl.min, Passes: ratio >= lvl.min}
	}
	return badges
}
