package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastfix/internal/colour"
	"github.com/jmylchreest/contrastfix/internal/config"
)

type modifyOptions struct {
	adj     colour.Adjustments
	format  string
	preview bool
}

// newModifyCmd represents the modify command
func newModifyCmd(global *globalOptions) *cobra.Command {
	opts := &modifyOptions{adj: colour.NoAdjustments()}

	cmd := &cobra.Command{
		Use:   "modify <colour>",
		Short: "Adjust lightness, saturation, hue and opacity of a colour",
		Long: `Apply lightness and saturation offsets, a hue rotation and an opacity to a
colour and print the result as hex, rgb() and, when translucent, rgba().

Lightness and saturation are percentage points from -100 to 100, hue is a
rotation in degrees and opacity a percentage from 0 to 100. Out of range
values are clamped (hue wraps around).

Examples:
  contrastfix modify --lightness 10 '#F0813E'
  contrastfix modify --hue 180 --opacity 50 F0813E`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModify(cmd, global, opts, args)
		},
	}

	cmd.Flags().IntVar(&opts.adj.Lightness, "lightness", 0, "lightness offset (-100 to 100)")
	cmd.Flags().IntVar(&opts.adj.Saturation, "saturation", 0, "saturation offset (-100 to 100)")
	cmd.Flags().IntVar(&opts.adj.Hue, "hue", 0, "hue rotation in degrees")
	cmd.Flags().IntVar(&opts.adj.Opacity, "opacity", 100, "opacity percentage (0 to 100)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format (table, json)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "show colour previews in terminal")

	return cmd
}

// runModify executes the modify command.
func runModify(cmd *cobra.Command, global *globalOptions, opts *modifyOptions, args []string) error {
	format := flagOr(cmd, "format", opts.format, global.cfg.Format)
	preview := flagOr(cmd, "preview", opts.preview, global.cfg.Preview)

	if err := checkFormat(format); err != nil {
		return err
	}

	base, err := colour.ParseHex(args[0])
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}

	m := colour.Modify(base, opts.adj)
	global.logger.Debug("colour modified", "original", base.Hex(), "result", m.Result.Hex(),
		"lightness", m.Adjustments.Lightness, "saturation", m.Adjustments.Saturation,
		"hue", m.Adjustments.Hue, "opacity", m.Adjustments.Opacity)

	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		return writeJSON(out, newModifyReport(m))
	}
	return writeModifyTable(out, m, preview)
}
