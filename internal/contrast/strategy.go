package contrast

import "github.com/jmylchreest/contrastfix/internal/colour"

// Strategy names one way of moving a colour pair apart in lightness.
type Strategy string

const (
	LightenText       Strategy = "lighten-text"
	DarkenText        Strategy = "darken-text"
	LightenBackground Strategy = "lighten-bg"
	DarkenBackground  Strategy = "darken-bg"
	// BalanceSmart lightens the darker colour and darkens the lighter one
	// in the same step.
	BalanceSmart Strategy = "balance-smart"
)

// Search parameters.
const (
	// MaxSteps caps the incremental search per attempt.
	MaxSteps = 50
	// SaturationBoost is added to saturation on every step.
	SaturationBoost = 0.08
)

// Intensities are the lightness deltas tried per step, gentlest first.
var Intensities = []float64{0.03, 0.05, 0.08}

var (
	textStrategies       = []Strategy{LightenText, DarkenText}
	backgroundStrategies = []Strategy{LightenBackground, DarkenBackground}
	directional          = []Strategy{LightenText, DarkenText, LightenBackground, DarkenBackground}
)

// attempt is one row of the search plan.
type attempt struct {
	strategy  Strategy
	intensity float64
}

// strategies returns the strategies worth trying for a lock state.
func strategies(lock Lock) []Strategy {
	switch lock {
	case LockBackground:
		return textStrategies
	case LockText:
		return backgroundStrategies
	default:
		return append(append([]Strategy{}, directional...), BalanceSmart)
	}
}

// extremes returns the directional strategies that get a clamp-to-white or
// clamp-to-black fallback for a lock state.
func extremes(lock Lock) []Strategy {
	switch lock {
	case LockBackground:
		return textStrategies
	case LockText:
		return backgroundStrategies
	default:
		return directional
	}
}

// plan expands the strategies for lock into (strategy, intensity) pairs.
func plan(lock Lock) []attempt {
	strats := strategies(lock)
	out := make([]attempt, 0, len(strats)*len(Intensities))
	for _, s := range strats {
		for _, i := range Intensities {
			out = append(out, attempt{strategy: s, intensity: i})
		}
	}
	return out
}

// step applies a single increment of the strategy to the pair.
// textDarker is the initial ordering of the pair and only matters for
// BalanceSmart.
func (s Strategy) step(text, bg colour.RGB, amount float64, textDarker bool) (colour.RGB, colour.RGB) {
	switch s {
	case LightenText:
		text = colour.AdjustLightness(text, amount, SaturationBoost)
	case DarkenText:
		text = colour.AdjustLightness(text, -amount, SaturationBoost)
	case LightenBackground:
		bg = colour.AdjustLightness(bg, amount, SaturationBoost)
	case DarkenBackground:
		bg = colour.AdjustLightness(bg, -amount, SaturationBoost)
	case BalanceSmart:
		if textDarker {
			text = colour.AdjustLightness(text, amount, SaturationBoost)
			bg = colour.AdjustLightness(bg, -amount, SaturationBoost)
		} else {
			text = colour.AdjustLightness(text, -amount, SaturationBoost)
			bg = colour.AdjustLightness(bg, amount, SaturationBoost)
		}
	}
	return text, bg
}

// extreme clamps the colour the strategy moves straight to white or black.
func (s Strategy) extreme(text, bg colour.RGB) (colour.RGB, colour.RGB) {
	switch s {
	case LightenText:
		text = colour.White
	case DarkenText:
		text = colour.Black
	case LightenBackground:
		bg = colour.White
	case DarkenBackground:
		bg = colour.Black
	}
	return text, bg
}
