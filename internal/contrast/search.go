package contrast

import "github.com/jmylchreest/contrastfix/internal/colour"

// search repeatedly applies one attempt until the pair reaches target or
// MaxSteps increments have been made. Running out of steps is not an error;
// the last pair is returned as is.
func search(text, bg colour.RGB, target float64, a attempt) Candidate {
	textDarker := text.Lightness() < bg.Lightness()

	t, b := text, bg
	steps := 0
	for colour.ContrastRatio(t, b) < target && steps < MaxSteps {
		t, b = a.strategy.step(t, b, a.intensity, textDarker)
		steps++
	}
	return newCandidate(t, b, steps, a.strategy, a.intensity)
}

// extreme builds the fallback candidate for a directional strategy.
func extreme(text, bg colour.RGB, s Strategy) Candidate {
	t, b := s.extreme(text, bg)
	return newCandidate(t, b, ExtremeSteps, s, 0)
}

// pool runs the full search plan for lock, followed by the extreme
// fallbacks, and returns every attempt in plan order.
func pool(text, bg colour.RGB, target float64, lock Lock) []Candidate {
	attempts := plan(lock)
	ext := extremes(lock)

	out := make([]Candidate, 0, len(attempts)+len(ext))
	for _, a := range attempts {
		out = append(out, search(text, bg, target, a))
	}
	for _, s := range ext {
		out = append(out, extreme(text, bg, s))
	}
	return out
}
