// Package cli provides the cobra command structure for smartmd.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/smartmd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags are the persistent flags shared by all subcommands.
type rootFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root smartmd command with all
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "smartmd",
		Short: "A typographic text processor for markdown",
		Long: `smartmd runs markdown-style documents through a pipeline of
independently toggleable core rules: source normalization, tokenizing,
typographic replacements, and smart quotes. The rule chain is an
ordered registry that plugins can extend, reorder, and toggle by name.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newTypesetCommand(flags))
	rootCmd.AddCommand(newRulesCommand(flags))
	rootCmd.AddCommand(newTokensCommand(flags))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
