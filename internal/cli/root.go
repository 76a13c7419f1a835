// Package cli provides the command-line interface for contrastfix.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/contrastfix/internal/colour"
	"github.com/jmylchreest/contrastfix/internal/config"
	"github.com/jmylchreest/contrastfix/internal/version"
)

// globalOptions holds state shared by every subcommand. It is populated in
// PersistentPreRunE, after flags are parsed.
type globalOptions struct {
	verbose    bool
	quiet      bool
	configPath string

	cfg    config.Config
	logger hclog.Logger
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{
		cfg:    config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "contrastfix",
		Short: "Suggest accessible text and background colour pairs",
		Long: `contrastfix checks text/background colour pairs against WCAG contrast
targets and suggests gentle adjustments for pairs that fall short.

Suggestions are ranked so the least intrusive change that clears WCAG AA
comes first. Lock either colour to keep it fixed while the other moves.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: opts.load,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newFixCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newModifyCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// load reads the configuration and sets up logging and terminal colour.
func (o *globalOptions) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.cfg = cfg

	level := cfg.Level()
	switch {
	case o.quiet:
		level = hclog.Off
	case o.verbose && level > hclog.Debug:
		level = hclog.Debug
	}
	o.logger = newLogger(cmd.ErrOrStderr(), level)
	o.logger.Debug("configuration loaded", "path", o.configPath, "target", float64(cfg.Target),
		"lock", cfg.Lock, "format", cfg.Format)

	colour.DisableColourOutput = !supportsColour(cmd.OutOrStdout())
	return nil
}

// newLogger creates the command logger. Output is discarded when level is Off.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	if level == hclog.Off {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrastfix",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "contrastfix",
		Output: w,
		Level:  level,
	})
}

// supportsColour reports whether w is a terminal that accepts ANSI colour.
func supportsColour(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return colour.SupportsANSIColours(f)
}

// flagOr returns the flag value when the user set it, otherwise fallback.
func flagOr[T any](cmd *cobra.Command, name string, flag, fallback T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return fallback
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
