package ocr

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFTextLayer reads embedded page text with ledongthuc/pdf.
type PDFTextLayer struct{}

// NewTextLayer creates a text layer reader.
func NewTextLayer() *PDFTextLayer {
	return &PDFTextLayer{}
}

func (*PDFTextLayer) Open(data []byte) (TextSource, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open text layer: %w", err)
	}
	return &pdfText{reader: r}, nil
}

type pdfText struct {
	reader *pdf.Reader
}

func (t *pdfText) PageText(page int) (string, error) {
	if page < 1 || page > t.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", page, t.reader.NumPage())
	}

	p := t.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}

	return p.GetPlainText(nil)
}
