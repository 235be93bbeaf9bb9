package ocr_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/pdf-tools/internal/ocr"
	"github.com/JaimeStill/pdf-tools/internal/pdftest"
)

func TestPDFTextLayer_PageText(t *testing.T) {
	data := pdftest.Build(
		pdftest.Page{Text: pdftest.Marker(1)},
		pdftest.Page{},
		pdftest.Page{Text: pdftest.Marker(3)},
	)

	src, err := ocr.NewTextLayer().Open(data)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	tests := []struct {
		page int
		want string
	}{
		{1, pdftest.Marker(1)},
		{2, ""},
		{3, pdftest.Marker(3)},
	}

	for _, tt := range tests {
		got, err := src.PageText(tt.page)
		if err != nil {
			t.Fatalf("PageText(%d) error = %v", tt.page, err)
		}
		if tt.want == "" {
			if strings.TrimSpace(got) != "" {
				t.Errorf("PageText(%d) = %q, want no text", tt.page, got)
			}
			continue
		}
		if !strings.Contains(got, tt.want) {
			t.Errorf("PageText(%d) = %q, want it to contain %q", tt.page, got, tt.want)
		}
	}
}

func TestPDFTextLayer_PageOutOfRange(t *testing.T) {
	src, err := ocr.NewTextLayer().Open(pdftest.Numbered(2))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	for _, page := range []int{0, 3} {
		if _, err := src.PageText(page); err == nil {
			t.Errorf("PageText(%d) error = nil, want error", page)
		}
	}
}

func TestPDFTextLayer_NotAPDF(t *testing.T) {
	if _, err := ocr.NewTextLayer().Open([]byte("plain text, not a document")); err == nil {
		t.Error("Open() error = nil, want error")
	}
}
