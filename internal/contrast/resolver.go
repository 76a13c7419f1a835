// Package contrast suggests accessible text/background colour pairs.
//
// Given a pair that falls short of a WCAG contrast target, the resolver
// searches for gentle lightness adjustments that clear it, honouring which
// colour is locked, and returns up to three ranked, deduplicated
// suggestions labelled Subtle, Moderate and Bold.
//
// Resolution is synchronous and deterministic. A Resolver holds no mutable
// state and may be shared between goroutines.
package contrast

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/contrastfix/internal/colour"
)

// Request is a single resolution request.
type Request struct {
	Text       string
	Background string
	Target     float64
	Lock       Lock
}

// Resolver runs contrast repair searches.
type Resolver struct {
	logger hclog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger hclog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Resolve runs a resolution with a resolver that discards logs.
// See Resolver.Resolve.
func Resolve(text, bg string, target float64, textLocked, bgLocked bool) ([]Candidate, error) {
	return defaultResolver.Resolve(text, bg, target, textLocked, bgLocked)
}

// Resolve suggests up to three pairs reaching target.
//
// If the pair already meets target a single candidate labelled
// LabelAlreadyPasses is returned and no search runs. Colours are validated
// (text first) before the lock flags are checked.
func (r *Resolver) Resolve(text, bg string, target float64, textLocked, bgLocked bool) ([]Candidate, error) {
	t, b, err := parsePair(text, bg)
	if err != nil {
		return nil, err
	}
	lock, err := LockFromFlags(textLocked, bgLocked)
	if err != nil {
		return nil, err
	}
	return r.resolve(t, b, target, lock)
}

// ResolveRequest is Resolve for a Request.
func (r *Resolver) ResolveRequest(req Request) ([]Candidate, error) {
	t, b, err := parsePair(req.Text, req.Background)
	if err != nil {
		return nil, err
	}
	if !req.Lock.valid() {
		return nil, fmt.Errorf("invalid lock %s", req.Lock)
	}
	return r.resolve(t, b, req.Target, req.Lock)
}

// Candidates returns every attempt the search makes for the pair, in plan
// order and before any filtering, ranking or deduplication.
func (r *Resolver) Candidates(text, bg colour.RGB, target float64, lock Lock) ([]Candidate, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}
	if !lock.valid() {
		return nil, fmt.Errorf("invalid lock %s", lock)
	}
	return pool(text, bg, target, lock), nil
}

func (r *Resolver) resolve(text, bg colour.RGB, target float64, lock Lock) ([]Candidate, error) {
	if err := ValidateTarget(target); err != nil {
		return nil, err
	}

	current := colour.ContrastRatio(text, bg)
	if current >= target {
		r.logger.Debug("pair already passes", "text", text.Hex(), "background", bg.Hex(),
			"contrast", current, "target", target)
		c := newCandidate(text, bg, 0, "", 0)
		c.Label = LabelAlreadyPasses
		return []Candidate{c}, nil
	}

	raw := pool(text, bg, target, lock)
	for _, c := range raw {
		r.logger.Trace("attempt", "strategy", c.Strategy, "intensity", c.Intensity,
			"text", c.Text.Hex(), "background", c.Background.Hex(),
			"contrast", c.Contrast, "steps", c.Steps)
	}

	results := label(dedupe(rank(improving(raw, current))))
	if len(results) == 0 {
		top, ok := best(raw)
		if !ok {
			return nil, nil
		}
		r.logger.Debug("no candidate improves contrast, repeating best attempt",
			"strategy", top.Strategy, "contrast", top.Contrast)
		results = repeatBest(top)
	}

	r.logger.Debug("resolved", "text", text.Hex(), "background", bg.Hex(),
		"lock", lock.String(), "target", target, "contrast", current,
		"attempts", len(raw), "results", len(results))
	return results, nil
}

func parsePair(text, bg string) (colour.RGB, colour.RGB, error) {
	t, err := colour.ParseHex(text)
	if err != nil {
		return colour.RGB{}, colour.RGB{}, &InvalidColourError{Side: SideText, Value: text, Err: err}
	}
	b, err := colour.ParseHex(bg)
	if err != nil {
		return colour.RGB{}, colour.RGB{}, &InvalidColourError{Side: SideBackground, Value: bg, Err: err}
	}
	return t, b, nil
}
