package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// CLI командная строка сервиса расчетов
type CLI struct {
	reporter *Reporter
	rootCmd  *cobra.Command
}

// Options настройки CLI
type Options struct {
	Output io.Writer
}

// NewCLI создает CLI
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
	}
	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs задает аргументы вместо os.Args
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "immocalc",
		Short:         "Калькулятор инвестиций в недвижимость (Bestand / Aufteiler)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newBestandCmd(cli.reporter))
	cmd.AddCommand(newAufteilerCmd(cli.reporter))

	return cmd
}
