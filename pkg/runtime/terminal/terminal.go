package terminal

import (
	"io"
	"os"

	"github.com/mediadesk/taqrir/pkg/runtime/terminal/commands"
	"github.com/mediadesk/taqrir/pkg/runtime/terminal/export"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	exportservice "github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	editor   *editor.Editor
	calc     *followers.Calculator
	html     *exportservice.HTMLRenderer
	pdf      *exportservice.PDFExporter
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Editor      *editor.Editor
	Calculator  *followers.Calculator
	HTML        *exportservice.HTMLRenderer
	PDFExporter *exportservice.PDFExporter
	Output      io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		editor:   opts.Editor,
		calc:     opts.Calculator,
		html:     opts.HTML,
		pdf:      opts.PDFExporter,
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
		Use:   "taqrir",
		Short: "Monthly report builder",
	}

	cmd.AddCommand(commands.NewSummaryCmd(cli.editor, cli.calc, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.editor, cli.html, cli.pdf))
	cmd.AddCommand(commands.NewResetCmd(cli.editor))

	return cmd
}
