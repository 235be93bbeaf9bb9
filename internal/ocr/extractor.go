package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Extractor applies the per-page extraction policy: embedded text first,
// then render and recognize. A failure on one page is written into that
// page's section and never aborts the document.
type Extractor struct {
	text       TextLayer
	rasterizer Rasterizer
	recognizer Recognizer
	dpi        int
	logger     *slog.Logger
}

// NewExtractor creates an Extractor. A dpi of zero selects DefaultDPI.
func NewExtractor(
	text TextLayer,
	rasterizer Rasterizer,
	recognizer Recognizer,
	dpi int,
	logger *slog.Logger,
) *Extractor {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	return &Extractor{
		text:       text,
		rasterizer: rasterizer,
		recognizer: recognizer,
		dpi:        dpi,
		logger:     logger.With("system", "ocr"),
	}
}

// Extract returns one "Page {n}:" section per page, in page order.
func (e *Extractor) Extract(ctx context.Context, data []byte, pageCount int) string {
	source, err := e.openText(data)
	if err != nil {
		e.logger.Warn("text layer unavailable, falling back to ocr", "error", err)
		source = nil
	}

	render := &lazyRender{open: func() (RenderSource, error) {
		return e.rasterizer.Open(ctx, data)
	}}
	defer func() {
		if err := render.Close(); err != nil {
			e.logger.Warn("failed to release render source", "error", err)
		}
	}()

	var b strings.Builder
	for page := 1; page <= pageCount; page++ {
		fmt.Fprintf(&b, "Page %d:\n", page)

		text, err := e.extractPage(ctx, source, render, page)
		switch {
		case err != nil:
			e.logger.Warn("page extraction failed", "page", page, "error", err)
			fmt.Fprintf(&b, "Error extracting text: %v\n", err)
		case strings.TrimSpace(text) == "":
			b.WriteString("No text extracted\n")
		default:
			b.WriteString(text)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (e *Extractor) openText(data []byte) (source TextSource, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed PDF: %v", rec)
		}
	}()
	return e.text.Open(data)
}

func (e *Extractor) extractPage(ctx context.Context, source TextSource, render *lazyRender, page int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()

	if source != nil {
		text, err = source.PageText(page)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}

	rs, err := render.source()
	if err != nil {
		return "", err
	}

	img, err := rs.Render(page, e.dpi)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	e.logger.Debug("running ocr", "page", page, "dpi", e.dpi)
	return e.recognizer.Recognize(ctx, img)
}

// lazyRender opens the render source on first use so documents with a
// complete text layer never stage files or start a renderer.
type lazyRender struct {
	open   func() (RenderSource, error)
	rs     RenderSource
	err    error
	opened bool
}

func (l *lazyRender) source() (RenderSource, error) {
	if !l.opened {
		l.opened = true
		l.rs, l.err = l.open()
		if l.err != nil {
			l.err = fmt.Errorf("open renderer: %w", l.err)
		}
	}
	return l.rs, l.err
}

func (l *lazyRender) Close() error {
	if l.rs == nil {
		return nil
	}
	return l.rs.Close()
}
