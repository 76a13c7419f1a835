package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastfix/internal/colour"
	"github.com/jmylchreest/contrastfix/internal/config"
	"github.com/jmylchreest/contrastfix/internal/contrast"
)

type checkOptions struct {
	target  targetValue
	format  string
	preview bool
}

// newCheckCmd represents the check command
func newCheckCmd(global *globalOptions) *cobra.Command {
	opts := &checkOptions{target: targetValue(colour.ContrastAA)}

	cmd := &cobra.Command{
		Use:   "check <text> <background>",
		Short: "Report the contrast ratio of a colour pair",
		Long: `Report the WCAG contrast ratio of a text/background colour pair, whether it
meets the target, and which WCAG levels (AA Large, AA, AAA) it passes.

Examples:
  contrastfix check '#777777' '#FFFFFF'
  contrastfix check --target aaa --format json 000000 336699`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, global, opts, args)
		},
	}

	cmd.Flags().VarP(&opts.target, "target", "t", "contrast target (aa-large, aa, aaa or a ratio)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show a text sample in terminal")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, global *globalOptions, opts *checkOptions, args []string) error {
	target := flagOr(cmd, "target", float64(opts.target), float64(global.cfg.Target))
	format := flagOr(cmd, "format", opts.format, global.cfg.Format)
	preview := flagOr(cmd, "preview", opts.preview, global.cfg.Preview)

	if err := checkFormat(format); err != nil {
		return err
	}

	text, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("failed to check contrast: %w",
			&contrast.InvalidColourError{Side: contrast.SideText, Value: args[0], Err: err})
	}
	bg, err := colour.ParseHex(args[1])
	if err != nil {
		return fmt.Errorf("failed to check contrast: %w",
			&contrast.InvalidColourError{Side: contrast.SideBackground, Value: args[1], Err: err})
	}

	ratio := colour.ContrastRatio(text, bg)
	global.logger.Debug("contrast checked", "text", text.Hex(), "background", bg.Hex(), "contrast", ratio)

	report := checkReport{
		pairJSON: newPair(text, bg, target),
		Target:   target,
		Level:    contrast.LevelName(target),
		Badges:   colour.Badges(ratio),
	}

	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, report)
	}
	return writeCheckTable(out, report, text, bg, preview)
}
