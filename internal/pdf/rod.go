package pdf

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// RodEngine launches the browser with go-rod and prints through its page API.
type RodEngine struct{}

// PrintToPDF implements Engine.
func (e *RodEngine) PrintToPDF(ctx context.Context, browser, fileURL, outPath string) error {
	log.Printf("[PDF] rod printing %s", fileURL)

	l := launcher.New().Bin(browser).Headless(true).NoSandbox(true)
	u, err := l.Launch()
	if err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to launch browser", Cause: err}
	}
	defer l.Kill()

	b := rod.New().ControlURL(u).Context(ctx)
	if err := b.Connect(); err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to connect to browser", Cause: err}
	}
	defer func() { _ = b.Close() }()

	p, err := b.Page(proto.TargetCreateTarget{URL: fileURL})
	if err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to open page", Cause: err}
	}
	defer func() { _ = p.Close() }()

	if err := p.WaitLoad(); err != nil {
		return &EngineError{Engine: EngineRod, Message: "page did not load", Cause: err}
	}

	reader, err := p.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(letterWidthInches),
		PaperHeight:       floatPtr(letterHeightInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to print page", Cause: err}
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to read PDF stream", Cause: err}
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return &EngineError{Engine: EngineRod, Message: "failed to write PDF", Cause: err}
	}
	return nil
}

func floatPtr(v float64) *float64 {
	return &v
}
