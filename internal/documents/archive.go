package documents

import (
	"archive/zip"
	"bytes"
	"fmt"
)

type archiveEntry struct {
	name string
	data []byte
}

// writeArchive writes entries, in order, to a deflated ZIP archive.
// Entries carry no modification time so identical input produces
// identical archives.
func writeArchive(entries []archiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   e.name,
			Method: zip.Deflate,
		})
		if err != nil {
			return nil, fmt.Errorf("create archive entry %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("write archive entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}
