package commands

import (
	"fmt"

	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/spf13/cobra"
)

type ResetCmd struct {
	editor *editor.Editor
}

func NewResetCmd(ed *editor.Editor) *cobra.Command {
	rc := &ResetCmd{editor: ed}
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default report and clear persisted state",
		RunE:  rc.run,
	}
}

func (rc *ResetCmd) run(cmd *cobra.Command, args []string) error {
	if err := rc.editor.ResetToDefault(); err != nil {
		return fmt.Errorf("failed to reset report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Report restored to defaults.")
	return nil
}
