package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mediadesk/taqrir/pkg/runtime/terminal"
	"github.com/mediadesk/taqrir/pkg/services/editor"
	"github.com/mediadesk/taqrir/pkg/services/export"
	"github.com/mediadesk/taqrir/pkg/services/followers"
	"github.com/mediadesk/taqrir/pkg/store/state"
)

func main() {
	_ = godotenv.Load()

	stateDir := os.Getenv("STATE_DIR")
	if stateDir == "" {
		stateDir = ".taqrir"
	}

	stateStore, err := state.NewFileStore(stateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	ed, err := editor.New(stateStore)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	htmlRenderer, err := export.NewHTMLRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pdfOpts := export.DefaultPDFOptions()
	pdfOpts.ChromePath = os.Getenv("CHROME_PATH")

	cli := terminal.NewCLI(terminal.Options{
		Editor:      ed,
		Calculator:  followers.NewCalculator(followers.DefaultAliases()),
		HTML:        htmlRenderer,
		PDFExporter: export.NewPDFExporter(htmlRenderer, pdfOpts),
		Output:      os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
