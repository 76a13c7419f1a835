package contrast

import (
	"math"

	"github.com/jmylchreest/contrastfix/internal/colour"
)

// ExtremeSteps is the step count recorded for extreme fallback candidates.
// It sorts after every finite step count.
const ExtremeSteps = math.MaxInt

// Result labels.
const (
	LabelSubtle        = "Subtle"
	LabelModerate      = "Moderate"
	LabelBold          = "Bold"
	LabelAlreadyPasses = "Already Passes"
)

// Labels are assigned to ranked results in order.
var Labels = []string{LabelSubtle, LabelModerate, LabelBold}

// Candidate is a proposed text/background pair.
type Candidate struct {
	Text       colour.RGB `json:"text"`
	Background colour.RGB `json:"background"`
	Contrast   float64    `json:"contrast"`
	// Steps is the number of increments applied, or ExtremeSteps.
	Steps     int      `json:"steps"`
	Strategy  Strategy `json:"strategy,omitempty"`
	Intensity float64  `json:"intensity,omitempty"`
	Label     string   `json:"label,omitempty"`
}

// newCandidate builds a Candidate, computing the contrast from the colours
// so the two can never disagree.
func newCandidate(text, bg colour.RGB, steps int, strategy Strategy, intensity float64) Candidate {
	return Candidate{
		Text:       text,
		Background: bg,
		Contrast:   colour.ContrastRatio(text, bg),
		Steps:      steps,
		Strategy:   strategy,
		Intensity:  intensity,
	}
}

// IsExtreme reports whether the candidate came from the clamp-to-white or
// clamp-to-black fallback.
func (c Candidate) IsExtreme() bool {
	return c.Steps == ExtremeSteps
}

// Passes reports whether the candidate meets target.
func (c Candidate) Passes(target float64) bool {
	return c.Contrast >= target
}

// similar reports whether both colours of c and o are within
// SimilarityThreshold lightness of each other.
func (c Candidate) similar(o Candidate) bool {
	textDiff := math.Abs(c.Text.Lightness() - o.Text.Lightness())
	bgDiff := math.Abs(c.Background.Lightness() - o.Background.Lightness())
	return textDiff < SimilarityThreshold && bgDiff < SimilarityThreshold
}
