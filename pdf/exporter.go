package pdf

import (
	"context"
	"fmt"

	"github.com/abhiman/studiobackend/config"
)

// GenerationError is returned for any failure to turn HTML into a PDF,
// including the engine being unavailable. Detail carries the diagnostic the
// handler surfaces to the caller.
type GenerationError struct {
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("pdf generation failed: %s", e.Detail)
	}
	return "pdf generation failed"
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Engine converts an HTML document into PDF bytes.
type Engine interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// Renderer is what handlers depend on; tests swap in stubs.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// Exporter wraps an engine and normalizes every failure into a
// *GenerationError. A nil engine means no rendering binary could be found
// at startup; rendering then fails with a clear diagnostic instead of the
// process refusing to boot.
type Exporter struct {
	engine Engine
}

// NewExporter picks the engine from config: chromium when requested,
// otherwise wkhtmltopdf resolved from the configured path or the system PATH.
func NewExporter(cfg *config.Config) *Exporter {
	if cfg.PDFEngine == "chromium" {
		return &Exporter{engine: &Chromium{
			BrowserPath: cfg.ChromePath,
			Timeout:     cfg.PDFTimeout,
		}}
	}

	engine, err := NewWKHTMLToPDF(cfg.WKHTMLToPDFPath, cfg.PDFTimeout)
	if err != nil {
		return &Exporter{}
	}
	return &Exporter{engine: engine}
}

// NewExporterWithEngine wires an explicit engine.
func NewExporterWithEngine(engine Engine) *Exporter {
	return &Exporter{engine: engine}
}

func (x *Exporter) Render(ctx context.Context, html string) ([]byte, error) {
	if x.engine == nil {
		return nil, &GenerationError{Detail: "no PDF rendering engine available"}
	}
	out, err := x.engine.Render(ctx, html)
	if err != nil {
		return nil, &GenerationError{Detail: err.Error(), Err: err}
	}
	return out, nil
}
