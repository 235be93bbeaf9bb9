// Package mupdf renders PDF pages in memory with MuPDF through go-fitz.
package mupdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"

	"github.com/JaimeStill/pdf-tools/internal/ocr"
)

// Rasterizer opens documents directly from memory; nothing is staged.
type Rasterizer struct{}

func New() *Rasterizer {
	return &Rasterizer{}
}

func (*Rasterizer) Open(_ context.Context, data []byte) (ocr.RenderSource, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return &source{doc: doc}, nil
}

type source struct {
	doc *fitz.Document
}

func (s *source) Render(page, dpi int) ([]byte, error) {
	if n := s.doc.NumPage(); page < 1 || page > n {
		return nil, fmt.Errorf("page %d out of range [1, %d]", page, n)
	}

	img, err := s.doc.ImageDPI(page-1, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", page, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", page, err)
	}

	return buf.Bytes(), nil
}

func (s *source) Close() error {
	return s.doc.Close()
}
