package documents

import (
	"context"
	"fmt"
)

// ExtractText never fails on a single page: page-level problems are
// reported inline in that page's section.
func (s *system) ExtractText(ctx context.Context, input []byte) (*Artifact, error) {
	doc, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if doc.Encrypted() {
		return nil, fmt.Errorf("%w and cannot be processed for OCR", ErrEncrypted)
	}
	if doc.PageCount() == 0 {
		return nil, ErrEmptyDocument
	}

	text := s.extractor.Extract(ctx, doc.Bytes(), doc.PageCount())

	s.logger.Info("extracted document text", "pages", doc.PageCount(), "chars", len(text))
	return &Artifact{
		Kind:        KindText,
		Filename:    TextFilename,
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(text),
	}, nil
}
