package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"mask/internal/resolver"
)

func (c *CLI) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the resolved Haxe version",
		Long:  "current prints the version this invocation would use and which mechanism provided it. Advisory; prints a note instead of failing when nothing resolves.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := c.service.Current(c.resolverContext())
			if err != nil {
				if errors.Is(err, resolver.ErrUnresolved) {
					c.println("no haxe version configured")
					return nil
				}
				return err
			}

			c.println(resolved.Version)
			c.printf("source: %s\n", resolved.Source)
			if !c.service.Store.Exists(resolved.Version) {
				c.printf("note: %s is not installed under %s\n", resolved.Version, c.service.Store.Root)
			}
			return nil
		},
	}
}
