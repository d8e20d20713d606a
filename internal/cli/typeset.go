package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/smartmd/internal/logging"
	"github.com/yaklabco/smartmd/pkg/config"
	"github.com/yaklabco/smartmd/pkg/core"
	"github.com/yaklabco/smartmd/pkg/parser/goldmark"
	"github.com/yaklabco/smartmd/pkg/runner"
)

type typesetFlags struct {
	write       bool
	jobs        int
	flavor      string
	typographer bool

	// typographerSet records whether --typographer was given
	// explicitly, so an untouched flag does not stomp the config file.
	typographerSet bool
}

func newTypesetCommand(root *rootFlags) *cobra.Command {
	flags := &typesetFlags{}

	cmd := &cobra.Command{
		Use:   "typeset [files...]",
		Short: "Run documents through the typographic pipeline",
		Long: `Process one or more files (or stdin when no file or "-" is given)
through the core rule chain and print the rendered text. With --write,
each input file is rewritten in place instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.typographerSet = cmd.Flags().Changed("typographer")
			opts, err := loadOptions(root, flags)
			if err != nil {
				return err
			}

			c := core.New(goldmark.New(opts.Flavor))

			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				return typesetStdin(cmd.OutOrStdout(), c, opts)
			}

			r := runner.New(c, opts)
			result, err := r.Run(cmd.Context(), runner.Options{
				Paths: args,
				Jobs:  flags.jobs,
				Write: flags.write,
			})
			if err != nil {
				return err
			}

			logger := logging.FromContext(cmd.Context())
			for _, outcome := range result.Files {
				if outcome.Err != nil {
					logger.Error("failed", logging.FieldPath, outcome.Path,
						logging.FieldError, outcome.Err)
					continue
				}
				if !flags.write {
					fmt.Fprint(cmd.OutOrStdout(), outcome.Output)
				}
			}

			logger.Debug("done",
				logging.FieldFilesProcessed, result.Stats.FilesProcessed,
				logging.FieldFilesChanged, result.Stats.FilesChanged,
				logging.FieldFilesWritten, result.Stats.FilesWritten,
			)

			if result.HasErrors() {
				return ErrFilesFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = CPU count)")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm")
	cmd.Flags().BoolVar(&flags.typographer, "typographer", true, "enable typographic substitutions")

	return cmd
}

// ErrFilesFailed signals per-file failures that were already logged;
// main maps it to a non-zero exit without logging it again.
var ErrFilesFailed = errors.New("some files failed to process")

func typesetStdin(out io.Writer, c *core.Core, opts *config.Options) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	state, err := c.Process(string(data), opts)
	if err != nil {
		return err
	}
	fmt.Fprint(out, core.RenderText(state.Tokens))
	return nil
}

// loadOptions resolves config file values and command-line overrides
// into the shared options object.
func loadOptions(root *rootFlags, flags *typesetFlags) (*config.Options, error) {
	opts, err := config.LoadOrDefault(root.configPath)
	if err != nil {
		return nil, err
	}
	if flags != nil {
		if flags.flavor != "" {
			opts.Flavor = flags.flavor
		}
		if flags.typographerSet {
			opts.Typographer = flags.typographer
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
