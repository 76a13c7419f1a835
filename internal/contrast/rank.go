package contrast

import (
	"cmp"
	"math"
	"slices"
)

// Ranking parameters.
const (
	// RankingThreshold is the ratio results are ranked against. It is fixed
	// at WCAG AA regardless of the requested target so that the gentlest
	// change clearing AA always comes first.
	RankingThreshold = 4.5
	// SimilarityThreshold is the lightness distance below which two
	// candidates count as the same suggestion.
	SimilarityThreshold = 0.03
	// MaxResults is the number of suggestions returned.
	MaxResults = 3
)

// compareCandidates orders passing candidates first, then by distance from
// RankingThreshold, then by fewest steps.
func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(failRank(a), failRank(b)); c != 0 {
		return c
	}
	aDiff := math.Abs(a.Contrast - RankingThreshold)
	bDiff := math.Abs(b.Contrast - RankingThreshold)
	if c := cmp.Compare(aDiff, bDiff); c != 0 {
		return c
	}
	return cmp.Compare(a.Steps, b.Steps)
}

func failRank(c Candidate) int {
	if c.Contrast >= RankingThreshold {
		return 0
	}
	return 1
}

// rank returns a stably sorted copy of candidates.
func rank(candidates []Candidate) []Candidate {
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, compareCandidates)
	return ranked
}

// dedupe keeps the first of every group of similar candidates.
func dedupe(ranked []Candidate) []Candidate {
	kept := make([]Candidate, 0, len(ranked))
	for _, c := range ranked {
		duplicate := slices.ContainsFunc(kept, func(k Candidate) bool {
			return c.similar(k)
		})
		if !duplicate {
			kept = append(kept, c)
		}
	}
	return kept
}

// improving drops candidates that do not raise the contrast above baseline.
func improving(candidates []Candidate, baseline float64) []Candidate {
	return slices.DeleteFunc(slices.Clone(candidates), func(c Candidate) bool {
		return c.Contrast <= baseline
	})
}

// best returns the first candidate with the highest contrast.
func best(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	top := candidates[0]
	for _, c := range candidates[1:] {
		if c.Contrast > top.Contrast {
			top = c
		}
	}
	return top, true
}

// label takes up to MaxResults candidates and names them in order.
func label(candidates []Candidate) []Candidate {
	n := min(len(candidates), MaxResults)
	out := make([]Candidate, n)
	for i := range n {
		out[i] = candidates[i]
		out[i].Label = Labels[i]
	}
	return out
}

// repeatBest labels the same candidate under every result label.
func repeatBest(c Candidate) []Candidate {
	out := make([]Candidate, len(Labels))
	for i, l := range Labels {
		out[i] = c
		out[i].Label = l
	}
	return out
}
