package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/smartmd/pkg/core"
	"github.com/yaklabco/smartmd/pkg/parser/goldmark"
	"github.com/yaklabco/smartmd/pkg/token"
)

func newTokensCommand(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Dump the token stream after processing",
		Long: `Run a file (or stdin) through the core rule chain and print the
resulting token tree. Useful for inspecting what the rules rewrote.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(root, nil)
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 0 || args[0] == "-" {
				data, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
			}

			c := core.New(goldmark.New(opts.Flavor))
			state, err := c.Process(string(data), opts)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), token.Dump(state.Tokens))
			return nil
		},
	}

	return cmd
}
