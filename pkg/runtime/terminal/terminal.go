package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/fact-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/fact-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/fact-atlas/pkg/services/loader"
)

// CLI represents the command-line interface
type CLI struct {
	registry loader.Registry
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry loader.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "Disclosure fact inspection tool",
	}

	cmd.AddCommand(commands.NewListCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewInspectCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewDuplicatesCmd(cli.registry, cli.reporter))

	return cmd
}
