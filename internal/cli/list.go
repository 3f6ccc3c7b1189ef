package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"mask/internal/resolver"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed Haxe versions",
		Long:  "list prints installed versions newest first, marking the version the resolver currently yields.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			versions, err := c.service.List()
			if err != nil {
				return err
			}

			if len(versions) == 0 {
				c.println("no haxe versions installed under " + c.service.Store.Root)
				return nil
			}

			resolved, resolveErr := c.service.Current(c.resolverContext())
			if resolveErr != nil && !errors.Is(resolveErr, resolver.ErrUnresolved) {
				return resolveErr
			}

			for _, version := range versions {
				prefix := "  "
				if resolveErr == nil && version == resolved.Version {
					prefix = "* "
				}
				c.printf("%s%s\n", prefix, version)
			}

			return nil
		},
	}
}
