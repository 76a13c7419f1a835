package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/jmylchreest/contrastfix/internal/colour"
	"github.com/jmylchreest/contrastfix/internal/config"
	"github.com/jmylchreest/contrastfix/internal/contrast"
)

const previewWidth = 8

var (
	passColour = colour.RGB{R: 0x4C, G: 0xAF, B: 0x50}
	failColour = colour.RGB{R: 0xE5, G: 0x39, B: 0x35}
)

// pairJSON is a colour pair in JSON output.
type pairJSON struct {
	Text       string  `json:"text"`
	Background string  `json:"background"`
	Contrast   float64 `json:"contrast"`
	Passes     bool    `json:"passes"`
}

// candidateJSON is a suggestion in JSON output.
type candidateJSON struct {
	Label string `json:"label"`
	pairJSON
	// Steps is omitted for extreme fallbacks.
	Steps     *int    `json:"steps,omitempty"`
	Extreme   bool    `json:"extreme,omitempty"`
	Strategy  string  `json:"strategy,omitempty"`
	Intensity float64 `json:"intensity,omitempty"`
}

// fixReport is the result of the fix command.
type fixReport struct {
	Target     float64         `json:"target"`
	Level      string          `json:"level"`
	Lock       string          `json:"lock"`
	Original   pairJSON        `json:"original"`
	Candidates []candidateJSON `json:"candidates"`
}

func newPair(text, bg colour.RGB, target float64) pairJSON {
	ratio := colour.ContrastRatio(text, bg)
	return pairJSON{
		Text:       text.Hex(),
		Background: bg.Hex(),
		Contrast:   round2(ratio),
		Passes:     ratio >= target,
	}
}

func newFixReport(text, bg colour.RGB, target float64, lock contrast.Lock, candidates []contrast.Candidate) fixReport {
	report := fixReport{
		Target:     target,
		Level:      contrast.LevelName(target),
		Lock:       lock.String(),
		Original:   newPair(text, bg, target),
		Candidates: make([]candidateJSON, len(candidates)),
	}
	for i, c := range candidates {
		cj := candidateJSON{
			Label:     c.Label,
			pairJSON:  newPair(c.Text, c.Background, target),
			Strategy:  string(c.Strategy),
			Intensity: c.Intensity,
		}
		if c.IsExtreme() {
			cj.Extreme = true
		} else {
			steps := c.Steps
			cj.Steps = &steps
		}
		report.Candidates[i] = cj
	}
	return report
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeFixTable renders a fix report as a summary line and a table.
func writeFixTable(w io.Writer, r fixReport, candidates []contrast.Candidate, preview, quiet bool) error {
	if !quiet {
		fmt.Fprintf(w, "Original: %s on %s  %s  %s (%s)\n\n",
			r.Original.Text, r.Original.Background, formatRatio(r.Original.Contrast),
			status(r.Original.Passes, "Passes", "Below target"), r.Level)
	}

	headers := []string{"LABEL", "TEXT", "BACKGROUND", "CONTRAST", "STEPS", "STRATEGY", "STATUS"}
	if preview {
		headers = append([]string{"PREVIEW"}, headers...)
	}
	table := NewTable(headers)

	for i, c := range r.Candidates {
		steps := "extreme"
		if c.Steps != nil {
			steps = fmt.Sprintf("%d", *c.Steps)
		}
		row := []string{c.Label, c.Text, c.Background, formatRatio(c.Contrast), steps, c.Strategy,
			status(c.Passes, "Passes", "Fails")}
		if preview {
			sample := colour.Sample(candidates[i].Text, candidates[i].Background, "Aa", previewWidth)
			row = append([]string{sample}, row...)
		}
		table.AddRow(row)
	}

	_, err := io.WriteString(w, table.Render())
	return err
}

// checkReport is the result of the check command.
type checkReport struct {
	pairJSON
	Target float64        `json:"target"`
	Level  string         `json:"level"`
	Badges []colour.Badge `json:"badges"`
}

func writeCheckTable(w io.Writer, r checkReport, text, bg colour.RGB, preview bool) error {
	if preview {
		fmt.Fprintf(w, "%s\n", colour.Sample(text, bg, "Sample text", 16))
	}
	fmt.Fprintf(w, "Contrast: %s  %s (%s)\n", formatRatio(r.Contrast), status(r.Passes, "Passes", "Below target"), r.Level)

	badges := ""
	for i, b := range r.Badges {
		if i > 0 {
			badges += "  "
		}
		badges += b.String()
	}
	_, err := fmt.Fprintln(w, badges)
	return err
}

// modifyReport is the result of the modify command.
type modifyReport struct {
	Original    []string           `json:"original"`
	Modified    []string           `json:"modified"`
	Opacity     float64            `json:"opacity"`
	Adjustments colour.Adjustments `json:"adjustments"`
}

func newModifyReport(m colour.Modified) modifyReport {
	return modifyReport{
		Original:    []string{m.Original.Hex(), m.Original.String()},
		Modified:    m.CSS(),
		Opacity:     m.Opacity,
		Adjustments: m.Adjustments,
	}
}

func writeModifyTable(w io.Writer, m colour.Modified, preview bool) error {
	headers := []string{"", "HEX", "RGB", "RGBA"}
	if preview {
		headers = append([]string{"PREVIEW"}, headers...)
	}
	table := NewTable(headers)

	add := func(name string, rgb colour.RGB, codes []string) {
		row := append([]string{name}, codes...)
		if preview {
			row = append([]string{colour.ColourPreview(rgb, previewWidth)}, row...)
		}
		table.AddRow(row)
	}
	add("original", m.Original, []string{m.Original.Hex(), m.Original.String()})
	add("modified", m.Result, m.CSS())

	_, err := io.WriteString(w, table.Render())
	return err
}

func checkFormat(format string) error {
	switch format {
	case config.FormatTable, config.FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s, %s)", format, config.FormatTable, config.FormatJSON)
	}
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}

func status(ok bool, pass, fail string) string {
	if ok {
		return colour.ColourString(passColour, "✓ "+pass)
	}
	return colour.ColourString(failColour, "✗ "+fail)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
