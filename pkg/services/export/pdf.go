package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/mediadesk/taqrir/pkg/models/domain"
)

// A4 landscape, inches.
const (
	paperWidth  = 11.69
	paperHeight = 8.27
)

type PDFOptions struct {
	// ChromePath overrides browser discovery, e.g. in containers.
	ChromePath string
	Headless   bool
}

func DefaultPDFOptions() PDFOptions {
	return PDFOptions{Headless: true}
}

// PDFExporter prints the rendered report in a headless browser. Pagination
// happens in the print engine: the template's break-inside rules keep atomic
// units whole when they fit a page, and units taller than a page are sliced
// by the engine with no content dropped.
type PDFExporter struct {
	renderer *HTMLRenderer
	opts     PDFOptions
}

func NewPDFExporter(renderer *HTMLRenderer, opts PDFOptions) *PDFExporter {
	return &PDFExporter{renderer: renderer, opts: opts}
}

// Export renders the document and returns the PDF bytes. The report state is
// read once up front; a failed export leaves nothing mutated.
func (p *PDFExporter) Export(
	ctx context.Context,
	doc domain.ReportDocument,
	settings domain.ReportSettings,
) ([]byte, error) {
	html, err := p.renderer.RenderString(doc, settings)
	if err != nil {
		return nil, err
	}

	// Chrome needs a navigable URL; a temp file avoids data-URI size limits
	// for reports with embedded thumbnails.
	tmp, err := os.CreateTemp("", "taqrir-report-*.html")
	if err != nil {
		return nil, fmt.Errorf("stage report html: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("stage report html: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("stage report html: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", p.opts.Headless),
		chromedp.Flag("disable-gpu", p.opts.Headless),
	)
	if p.opts.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(p.opts.ChromePath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	chromeCtx, cancelChrome := chromedp.NewContext(allocCtx)
	defer cancelChrome()

	abs, err := filepath.Abs(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("resolve report html path: %w", err)
	}

	var pdf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithLandscape(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print report to pdf: %w", err)
	}
	return pdf, nil
}
