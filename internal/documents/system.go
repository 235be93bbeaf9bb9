// Package documents implements the PDF operations exposed by the service:
// merge, split by page range, split into single pages, encrypt, and text
// extraction. Every operation is synchronous and works on in-memory bytes.
package documents

import (
	"context"
	"log/slog"
)

// System defines the PDF operations. Each call decodes its inputs and
// returns a new Artifact; nothing is retained between calls.
type System interface {
	// Merge concatenates the pages of every input, in submission order.
	Merge(ctx context.Context, inputs [][]byte) (*Artifact, error)

	// SplitByRange writes the pages selected by a page range expression.
	SplitByRange(ctx context.Context, input []byte, expr string) (*Artifact, error)

	// SplitToPages writes every page as its own document inside a ZIP archive.
	SplitToPages(ctx context.Context, input []byte) (*Artifact, error)

	// Encrypt protects the document with password.
	Encrypt(ctx context.Context, input []byte, password string) (*Artifact, error)

	// ExtractText returns per-page text, reading the text layer first and
	// running OCR on pages without one.
	ExtractText(ctx context.Context, input []byte) (*Artifact, error)
}

// TextExtractor produces the sectioned text of a document.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, pageCount int) string
}

type system struct {
	extractor TextExtractor
	logger    *slog.Logger
}

// New creates the documents system.
func New(extractor TextExtractor, logger *slog.Logger) System {
	return &system{
		extractor: extractor,
		logger:    logger.With("system", "documents"),
	}
}
