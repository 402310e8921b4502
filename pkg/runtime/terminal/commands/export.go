package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mediadesk/taqrir/pkg/services/editor"
	exportservice "github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	format string
	output string
	editor *editor.Editor
	html   *exportservice.HTMLRenderer
	pdf    *exportservice.PDFExporter
}

func NewExportCmd(ed *editor.Editor, html *exportservice.HTMLRenderer, pdf *exportservice.PDFExporter) *cobra.Command {
	ec := &ExportCmd{editor: ed, html: html, pdf: pdf}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current report to a file",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.format, "format", "json", "Export format: json, word or pdf")
	cmd.Flags().StringVar(&ec.output, "output", "", "Destination file path")

	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, args []string) error {
	switch ec.format {
	case "json":
		out, err := ec.editor.ExportJSON()
		if err != nil {
			return fmt.Errorf("failed to export json: %w", err)
		}
		return os.WriteFile(ec.output, []byte(out), 0o644)
	case "word":
		f, err := os.Create(ec.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		return ec.html.Render(f, ec.editor.Document(), ec.editor.Settings())
	case "pdf":
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()
		pdf, err := ec.pdf.Export(ctx, ec.editor.Document(), ec.editor.Settings())
		if err != nil {
			return fmt.Errorf("failed to export pdf: %w", err)
		}
		return os.WriteFile(ec.output, pdf, 0o644)
	default:
		return fmt.Errorf("unsupported format %q. Supported formats: json, word, pdf", ec.format)
	}
}
