package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Merge validates every input before writing anything, so a bad input
// at any position fails the whole request. Error messages name the
// 1-based position of the offending file.
func (s *system) Merge(ctx context.Context, inputs [][]byte) (*Artifact, error) {
	if len(inputs) == 0 {
		return nil, ErrNoFiles
	}

	readers := make([]io.ReadSeeker, 0, len(inputs))
	pageCount := 0

	for i, data := range inputs {
		doc, err := Decode(data)
		if err != nil {
			return nil, fmt.Errorf("file %d: %w", i+1, err)
		}
		if doc.Encrypted() {
			return nil, fmt.Errorf("file %d: %w and cannot be merged", i+1, ErrEncrypted)
		}
		pageCount += doc.PageCount()
		readers = append(readers, bytes.NewReader(data))
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, newConfiguration()); err != nil {
		return nil, fmt.Errorf("merge documents: %w", err)
	}

	s.logger.Info("merged documents", "files", len(inputs), "pages", pageCount, "bytes", buf.Len())
	return pdfArtifact(MergedFilename, buf.Bytes()), nil
}
