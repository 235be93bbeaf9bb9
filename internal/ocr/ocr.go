// Package ocr extracts page text from PDF documents. The embedded text layer
// is read first; pages without one are rasterized and passed through an OCR
// engine. Text layer, rasterizer and OCR engine are pluggable capabilities.
package ocr

import (
	"context"
	"io"
)

// DefaultDPI is the resolution pages are rendered at before recognition.
const DefaultDPI = 300

// TextLayer opens the embedded text layer of a PDF.
type TextLayer interface {
	Open(data []byte) (TextSource, error)
}

// TextSource returns the embedded text of a 1-based page.
type TextSource interface {
	PageText(page int) (string, error)
}

// Rasterizer opens a PDF for page rendering.
type Rasterizer interface {
	Open(ctx context.Context, data []byte) (RenderSource, error)
}

// RenderSource renders 1-based pages to PNG image bytes.
// Close releases any resources staged by Open.
type RenderSource interface {
	Render(page, dpi int) ([]byte, error)
	io.Closer
}

// Recognizer extracts text from an encoded raster image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}
