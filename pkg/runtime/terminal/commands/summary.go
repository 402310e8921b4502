package commands

import (
	"github.com/mediadesk/taqrir/pkg/runtime/terminal/export"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	"github.com/spf13/cobra"
)

type SummaryCmd struct {
	editor   *editor.Editor
	calc     *followers.Calculator
	reporter *export.Reporter
}

func NewSummaryCmd(ed *editor.Editor, calc *followers.Calculator, reporter *export.Reporter) *cobra.Command {
	sc := &SummaryCmd{editor: ed, calc: calc, reporter: reporter}
	return &cobra.Command{
		Use:   "summary",
		Short: "Print an outline of the current report",
		RunE:  sc.run,
	}
}

func (sc *SummaryCmd) run(cmd *cobra.Command, args []string) error {
	doc := sc.editor.Document()
	return sc.reporter.Handle(doc, sc.calc.Calculate(doc))
}
