package cli

import (
	"github.com/spf13/cobra"

	"mask/internal/dispatch"
	"mask/internal/settings"
)

func (c *CLI) newExecCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec [args...]",
		Short: "Run the Haxe compiler of the resolved version",
		Long: `exec resolves a version and runs its haxe binary with every argument
after "exec" forwarded verbatim. The version's directory is prepended to
the search path so build tools that launch haxe or haxelib themselves
stay on the same version. Exits with the compiler's exit code.

Global flags must come before the subcommand: mask -e 4.2.5 exec ...`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDispatch(cmd, dispatch.TargetCompiler, args)
		},
	}
}

func (c *CLI) newLibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lib [args...]",
		Short: "Run the haxelib tool of the resolved version",
		Long: `lib resolves a version and runs its haxelib binary with every argument
after "lib" forwarded verbatim, under the same pinned search path as
exec. Exits with haxelib's exit code.`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDispatch(cmd, dispatch.TargetLib, args)
		},
	}
}

func (c *CLI) runDispatch(cmd *cobra.Command, target dispatch.Target, args []string) error {
	rctx := c.resolverContext()

	if c.output >= settings.OutputVerbose {
		if resolved, err := rctx.Resolve(); err == nil {
			c.printf("using Haxe version %s (%s)\n", resolved.Version, resolved.Source)
		}
	}

	code, err := c.service.Exec(cmd.Context(), rctx, target, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &childExitError{code: code}
	}
	return nil
}
