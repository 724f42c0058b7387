package pdf

import (
	"context"
	"log"
	"os"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// CDPEngine drives the browser over the DevTools protocol with chromedp.
type CDPEngine struct{}

// PrintToPDF implements Engine.
func (e *CDPEngine) PrintToPDF(ctx context.Context, browser, fileURL, outPath string) error {
	log.Printf("[PDF] chromedp printing %s", fileURL)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(browser),
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(fileURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(letterWidthInches).
				WithPaperHeight(letterHeightInches).
				WithDisplayHeaderFooter(false).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return &EngineError{Engine: EngineCDP, Message: "failed to print page", Cause: err}
	}

	if err := os.WriteFile(outPath, pdf, 0644); err != nil {
		return &EngineError{Engine: EngineCDP, Message: "failed to write PDF", Cause: err}
	}
	return nil
}
