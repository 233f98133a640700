package terminal

import (
	"io"
	"os"

	"github.com/de-tools/profit-atlas/pkg/models/domain"
	"github.com/de-tools/profit-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/profit-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	factory commands.Factory
	output  io.Writer
	plain   bool
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Factory commands.Factory
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		factory: opts.Factory,
		output:  opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Order and ad-spend profitability reporting",
	}

	cmd.PersistentFlags().BoolVar(&cli.plain, "plain", false,
		"Compact line output instead of tables")

	reporter := &reporterSwitch{cli: cli}
	cmd.AddCommand(commands.NewKPICmd(cli.factory, reporter))
	cmd.AddCommand(commands.NewBreakdownCmd(cli.factory, reporter))

	return cmd
}

// reporterSwitch defers the table/plain choice until flags are parsed; the
// commands are constructed before Execute sees --plain.
type reporterSwitch struct {
	cli *CLI
}

func (r *reporterSwitch) Handle(report *domain.Report) error {
	if r.cli.plain {
		return NewReporter(r.cli.output).Handle(report)
	}
	return export.NewReporter(r.cli.output).Handle(report)
}
