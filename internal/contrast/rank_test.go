package contrast

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/contrastfix/internal/colour"
)

// ids returns the Label of each candidate; tests use it as an identifier.
func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Label
	}
	return out
}

func TestRank(t *testing.T) {
	in := []Candidate{
		{Label: "failing", Contrast: 3.0, Steps: 1},
		{Label: "far", Contrast: 9.0, Steps: 2},
		{Label: "near-slow", Contrast: 4.6, Steps: 20},
		{Label: "extreme", Contrast: 4.6, Steps: ExtremeSteps},
		{Label: "near-fast", Contrast: 4.6, Steps: 5},
		{Label: "closest", Contrast: 4.5, Steps: 40},
		{Label: "almost", Contrast: 4.49, Steps: 1},
	}

	got := ids(rank(in))
	want := []string{"closest", "near-fast", "near-slow", "extreme", "far", "almost", "failing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rank() order mismatch (-want +got):\n%s", diff)
	}

	if in[0].Label != "failing" {
		t.Error("rank() modified its input")
	}
}

func TestRankIsStable(t *testing.T) {
	in := []Candidate{
		{Label: "a", Contrast: 5.0, Steps: 3},
		{Label: "b", Contrast: 5.0, Steps: 3},
		{Label: "c", Contrast: 5.0, Steps: 3},
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids(rank(in))); diff != "" {
		t.Errorf("rank() reordered equal candidates (-want +got):\n%s", diff)
	}
}

func TestDedupe(t *testing.T) {
	white := colour.White
	in := []Candidate{
		{Label: "black", Text: colour.MustParseHex("#000000"), Background: white},
		{Label: "near-black", Text: colour.MustParseHex("#050505"), Background: white},
		{Label: "dark-grey", Text: colour.MustParseHex("#101010"), Background: white},
		{Label: "black-on-grey", Text: colour.MustParseHex("#000000"), Background: colour.MustParseHex("#E0E0E0")},
	}

	got := ids(dedupe(in))
	want := []string{"black", "dark-grey", "black-on-grey"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dedupe() mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeKeepsFirst(t *testing.T) {
	in := []Candidate{
		{Label: "first", Text: colour.Black, Background: colour.White},
		{Label: "second", Text: colour.Black, Background: colour.White},
	}
	if diff := cmp.Diff([]string{"first"}, ids(dedupe(in))); diff != "" {
		t.Errorf("dedupe() mismatch (-want +got):\n%s", diff)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "none", n: 0, want: []string{}},
		{name: "one", n: 1, want: []string{LabelSubtle}},
		{name: "two", n: 2, want: []string{LabelSubtle, LabelModerate}},
		{name: "three", n: 3, want: []string{LabelSubtle, LabelModerate, LabelBold}},
		{name: "more than three", n: 7, want: []string{LabelSubtle, LabelModerate, LabelBold}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]Candidate, tt.n)
			got := ids(label(in))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("label() mismatch (-want +got):\n%s", diff)
			}
			for _, c := range in {
				if c.Label != "" {
					t.Fatal("label() modified its input")
				}
			}
		})
	}
}

func TestImproving(t *testing.T) {
	in := []Candidate{
		{Label: "worse", Contrast: 2.0},
		{Label: "same", Contrast: 3.0},
		{Label: "better", Contrast: 3.1},
	}
	if diff := cmp.Diff([]string{"better"}, ids(improving(in, 3.0))); diff != "" {
		t.Errorf("improving() mismatch (-want +got):\n%s", diff)
	}
	if len(in) != 3 || in[0].Label != "worse" {
		t.Error("improving() modified its input")
	}
}

func TestBest(t *testing.T) {
	if _, ok := best(nil); ok {
		t.Error("best(nil) reported a candidate")
	}

	in := []Candidate{
		{Label: "low", Contrast: 2.0},
		{Label: "high", Contrast: 8.0},
		{Label: "tie", Contrast: 8.0},
	}
	got, ok := best(in)
	if !ok || got.Label != "high" {
		t.Errorf("best() = %q, want %q", got.Label, "high")
	}
}

func TestRepeatBest(t *testing.T) {
	c := Candidate{Text: colour.Black, Background: colour.White, Contrast: 21, Steps: 4}
	got := repeatBest(c)
	if diff := cmp.Diff(Labels, ids(got)); diff != "" {
		t.Errorf("repeatBest() labels mismatch (-want +got):\n%s", diff)
	}
	for _, r := range got {
		if r.Text != c.Text || r.Background != c.Background || r.Steps != c.Steps {
			t.Errorf("repeatBest() changed the candidate: %+v", r)
		}
	}
}
