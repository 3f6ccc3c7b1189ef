package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"mask/internal/resolver"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report each version mechanism independently",
		Long: `check evaluates the explicit flag, the MASK_VERSION environment variable
and the mask file separately, with no precedence applied, and reports
whether each yields a value and whether that value names an installed
version. The report is advisory; a missing mechanism is not a failure.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := c.service.Check(c.resolverContext())
			if err != nil {
				return err
			}
			c.printCheckReport(reports)
			return nil
		},
	}
}

func (c *CLI) printCheckReport(reports []resolver.Report) {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	subtleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	for _, report := range reports {
		switch {
		case !report.Set:
			c.printf("%-28s %s\n", report.Mechanism, subtleStyle.Render("not set"))
		case report.Installed:
			c.printf("%-28s %s\n", report.Mechanism, okStyle.Render(report.Value+" (installed)"))
		default:
			c.printf("%-28s %s\n", report.Mechanism, badStyle.Render(report.Value+" (not installed)"))
		}
	}
}
