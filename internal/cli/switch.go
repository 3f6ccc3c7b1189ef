package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"mask/internal/settings"
	"mask/internal/tui"
)

func (c *CLI) newSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [version]",
		Short: "Record a Haxe version in the mask file",
		Long: `switch writes the given version to the mask file, creating the file if
it is absent and overwriting it otherwise. The version must already be
installed under the store root.

With no version and an interactive terminal, switch opens a picker of
installed versions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if !term.IsTerminal(int(os.Stdin.Fd())) {
					return usageErrorf("missing haxe version; run 'mask switch <version>'")
				}
				return tui.Run(c.service, c.resolverContext(), c.maskfilePath())
			}

			version := args[0]
			c.sayf(settings.OutputNormal, "switching to Haxe version %s\n", version)

			if err := c.service.Switch(version, c.maskfilePath()); err != nil {
				return err
			}

			c.sayf(settings.OutputNormal, "mask file %s now pins %s\n", c.maskfilePath(), version)
			return nil
		},
	}
}
