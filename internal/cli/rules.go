package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/smartmd/internal/ui/pretty"
	"github.com/yaklabco/smartmd/pkg/core"
	"github.com/yaklabco/smartmd/pkg/parser/goldmark"
	"github.com/yaklabco/smartmd/pkg/ruler"
)

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	Name    string   `json:"name"`
	Enabled bool     `json:"enabled"`
	Chains  []string `json:"chains"`
}

func newRulesCommand(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the core rule chain",
		Long: `List the registered core rules in execution order, with their
enabled state and any extra chain membership.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := loadOptions(root, nil)
			if err != nil {
				return err
			}

			c := core.New(goldmark.New(opts.Flavor))
			rules := c.Ruler.Rules()

			if format == formatJSON {
				return outputRulesJSON(cmd.OutOrStdout(), rules)
			}

			colorEnabled := pretty.ColorEnabled(root.color, os.Stdout)
			styles := pretty.NewStyles(colorEnabled)

			rows := make([]pretty.RuleRow, 0, len(rules))
			for _, r := range rules {
				rows = append(rows, pretty.RuleRow{
					Name:    r.Name,
					Chains:  r.Chains,
					Enabled: r.Enabled,
				})
			}

			width := pretty.TerminalWidth(os.Stdout)
			fmt.Fprint(cmd.OutOrStdout(), pretty.FormatRules(styles, rows, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func outputRulesJSON(out io.Writer, rules []ruler.RuleInfo) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, r := range rules {
		infos = append(infos, ruleInfo{
			Name:    r.Name,
			Enabled: r.Enabled,
			Chains:  r.Chains,
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}
