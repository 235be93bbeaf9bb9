package documents

import (
	"context"
	"fmt"

	"github.com/JaimeStill/pdf-tools/internal/pages"
)

func (s *system) SplitByRange(ctx context.Context, input []byte, expr string) (*Artifact, error) {
	doc, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if doc.Encrypted() {
		return nil, fmt.Errorf("%w and cannot be split", ErrEncrypted)
	}

	selected, err := pages.Parse(expr, doc.PageCount())
	if err != nil {
		return nil, err
	}

	data, err := doc.Select(selected)
	if err != nil {
		return nil, err
	}

	s.logger.Info("split document by range", "range", expr, "pages", len(selected))
	return pdfArtifact(SplitFilename, data), nil
}

// SplitToPages writes page_1.pdf through page_N.pdf, in page order.
func (s *system) SplitToPages(ctx context.Context, input []byte) (*Artifact, error) {
	doc, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if doc.Encrypted() {
		return nil, fmt.Errorf("%w and cannot be split", ErrEncrypted)
	}
	if doc.PageCount() == 0 {
		return nil, ErrEmptyDocument
	}

	entries := make([]archiveEntry, 0, doc.PageCount())
	for i := 1; i <= doc.PageCount(); i++ {
		data, err := doc.Page(i)
		if err != nil {
			return nil, err
		}
		entries = append(entries, archiveEntry{
			name: fmt.Sprintf("page_%d.pdf", i),
			data: data,
		})
	}

	archive, err := writeArchive(entries)
	if err != nil {
		return nil, err
	}

	s.logger.Info("split document into pages", "pages", len(entries), "bytes", len(archive))
	return &Artifact{
		Kind:        KindZIP,
		Filename:    SplitPagesFilename,
		ContentType: "application/zip",
		Data:        archive,
	}, nil
}
