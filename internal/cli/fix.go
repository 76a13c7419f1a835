package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastfix/internal/colour"
	"github.com/jmylchreest/contrastfix/internal/config"
	"github.com/jmylchreest/contrastfix/internal/contrast"
)

type fixOptions struct {
	target  targetValue
	lock    lockValue
	format  string
	preview bool
}

// newFixCmd represents the fix command
func newFixCmd(global *globalOptions) *cobra.Command {
	opts := &fixOptions{
		target: targetValue(colour.ContrastAA),
		lock:   lockValue(contrast.LockNone),
	}

	cmd := &cobra.Command{
		Use:   "fix <text> <background>",
		Short: "Suggest colour pairs that meet a contrast target",
		Long: `Suggest up to three adjustments of a text/background colour pair that meet
a WCAG contrast target.

Suggestions are labelled Subtle, Moderate and Bold. They are ranked so that
passing pairs closest to 4.5:1 (WCAG AA) come first, whatever the target.
A pair that already meets the target is reported as "Already Passes".

Colours are six digit hex values; the leading # is optional.

Examples:
  # Fix grey text on white for WCAG AA
  contrastfix fix '#777777' '#FFFFFF'

  # Keep the brand background, only move the text colour
  contrastfix fix --lock background '#F0813E' '#FFFFFF'

  # Aim for AAA and show previews
  contrastfix fix --target aaa --preview 336699 224466

  # Output as JSON
  contrastfix fix --format json '#777777' '#FFFFFF'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, global, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.target, "target", "t", "contrast target (aa-large, aa, aaa or a ratio)")
	cmd.Flags().VarP(&opts.lock, "lock", "l", "colour to keep unchanged (none, text, background)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// runFix executes the fix command.
func runFix(cmd *cobra.Command, global *globalOptions, opts *fixOptions, args []string) error {
	target := flagOr(cmd, "target", float64(opts.target), float64(global.cfg.Target))
	lock := flagOr(cmd, "lock", contrast.Lock(opts.lock), global.cfg.LockValue())
	format := flagOr(cmd, "format", opts.format, global.cfg.Format)
	preview := flagOr(cmd, "preview", opts.preview, global.cfg.Preview)

	if err := checkFormat(format); err != nil {
		return err
	}

	resolver := contrast.New(contrast.WithLogger(global.logger.Named("resolver")))
	candidates, err := resolver.ResolveRequest(contrast.Request{
		Text:       args[0],
		Background: args[1],
		Target:     target,
		Lock:       lock,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve contrast: %w", err)
	}

	// Both colours were validated by the resolver.
	text := colour.MustParseHex(args[0])
	bg := colour.MustParseHex(args[1])

	global.logger.Debug("suggestions ready", "count", len(candidates))

	report := newFixReport(text, bg, target, lock, candidates)
	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, report)
	}
	return writeFixTable(out, report, candidates, preview, global.quiet)
}
