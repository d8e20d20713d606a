package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RuleRow describes one registered rule for display.
type RuleRow struct {
	Name    string
	Chains  []string
	Enabled bool
}

// FormatRules renders the rule table: name, enabled state, and extra
// chain membership, in registration order. Lines wider than termWidth
// get their chains column trimmed.
func FormatRules(styles *Styles, rows []RuleRow, termWidth int) string {
	nameWidth := len("RULE")
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	var b strings.Builder
	b.WriteString(styles.TableHeader.Render(
		fmt.Sprintf("%-*s  %-5s  %s", nameWidth, "RULE", "STATE", "CHAINS")))
	b.WriteString("\n")

	for _, row := range rows {
		state := styles.Enabled.Render("on   ")
		if !row.Enabled {
			state = styles.Disabled.Render("off  ")
		}

		chains := strings.Join(row.Chains, ", ")
		prefix := fmt.Sprintf("%s  %s  ",
			styles.RuleName.Render(fmt.Sprintf("%-*s", nameWidth, row.Name)),
			state,
		)
		if avail := termWidth - lipgloss.Width(prefix); avail > 0 && len(chains) > avail {
			chains = chains[:avail]
		}

		b.WriteString(prefix)
		b.WriteString(styles.ChainName.Render(chains))
		b.WriteString("\n")
	}
	return b.String()
}
