// Package cli wires the cobra command tree to the service layer and maps
// errors to the process exit codes.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mask/internal/app"
	"mask/internal/maskfile"
	"mask/internal/resolver"
	"mask/internal/settings"
)

type CLI struct {
	stdout  io.Writer
	stderr  io.Writer
	service *app.Service

	explicit   string
	configPath string
	quiet      bool
	verbose    bool

	output settings.OutputLevel
}

func New(stdout io.Writer, stderr io.Writer, service *app.Service) *CLI {
	return &CLI{
		stdout:  stdout,
		stderr:  stderr,
		service: service,
		output:  settings.OutputNormal,
	}
}

// Root builds the command tree. TraverseChildren makes the root parse its
// own flags before handing off, so `mask -e 4.2.5 exec --version` keeps
// --version for the child untouched.
func (c *CLI) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "mask",
		Short: "Switch between installed Haxe versions",
		Long: `mask resolves which installed Haxe version an invocation should use and
re-executes the compiler or haxelib with the version's directory
prepended to the search path.

Versions live under ~/.haxe/<version>. The version to use comes from the
-e flag, the MASK_VERSION environment variable, or the project's .mask
file, in that order.`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return usageErrorf("missing subcommand; see 'mask --help' for usage")
		},
	}

	root.PersistentFlags().StringVarP(&c.explicit, "explicit", "e", "", "use this Haxe version, ignoring other mechanisms")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to the mask file (default .mask)")
	root.PersistentFlags().BoolVarP(&c.quiet, "quiet", "q", false, "print only the bare minimum")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "print everything")

	root.AddCommand(
		c.newSwitchCmd(),
		c.newCheckCmd(),
		c.newExecCmd(),
		c.newLibCmd(),
		c.newListCmd(),
		c.newCurrentCmd(),
	)

	return root
}

func (c *CLI) setup() error {
	loaded, err := settings.Load(c.service.Store.Root)
	if err != nil {
		return err
	}

	c.output = loaded.Output
	if c.quiet {
		c.output = settings.OutputQuiet
	}
	if c.verbose {
		c.output = settings.OutputVerbose
	}

	return nil
}

func (c *CLI) maskfilePath() string {
	if c.configPath != "" {
		return c.configPath
	}
	return maskfile.DefaultName
}

func (c *CLI) resolverContext() resolver.Context {
	return resolver.Context{
		Explicit:     c.explicit,
		MaskfilePath: c.maskfilePath(),
	}
}

func (c *CLI) println(line string) {
	_, _ = fmt.Fprintln(c.stdout, line)
}

func (c *CLI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.stdout, format, args...)
}

// sayf prints informational chatter gated by the output level.
func (c *CLI) sayf(level settings.OutputLevel, format string, args ...any) {
	if c.output >= level {
		_, _ = fmt.Fprintf(c.stdout, format, args...)
	}
}
