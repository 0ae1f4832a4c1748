package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches with the same fixed margin on every side.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	paperMarginIn = 0.4
)

const defaultPrintTimeout = 60 * time.Second

// ChromePrinter prints HTML through a headless Chrome instance. Every call
// launches a fresh browser, which keeps the server stateless at the cost
// of startup time per export.
type ChromePrinter struct {
	// ExecPath overrides the browser binary, normally taken from the
	// CHROME_PATH environment at wiring time.
	ExecPath string
	// Timeout bounds a whole print run including browser startup.
	Timeout time.Duration
}

// RenderPDF prints the document to A4 portrait PDF bytes.
func (p *ChromePrinter) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(p.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultPrintTimeout
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	// Chrome loads the page from disk. file:// navigation sidesteps
	// data-URL size limits on large documents.
	dir, err := os.MkdirTemp("", "export-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	pagePath := filepath.Join(dir, "index.html")
	if err := os.WriteFile(pagePath, html, 0o644); err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+pagePath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(paperMarginIn).
				WithMarginBottom(paperMarginIn).
				WithMarginLeft(paperMarginIn).
				WithMarginRight(paperMarginIn).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdf, nil
}

var _ Renderer = (*ChromePrinter)(nil)
