package documents_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/JaimeStill/pdf-tools/internal/documents"
	"github.com/JaimeStill/pdf-tools/internal/pdftest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeExtractor returns one "Page n:" section per page without reading
// the document.
type fakeExtractor struct {
	pageCount int
	calls     int
}

func (f *fakeExtractor) Extract(ctx context.Context, data []byte, pageCount int) string {
	f.calls++
	f.pageCount = pageCount

	var b strings.Builder
	for i := 1; i <= pageCount; i++ {
		fmt.Fprintf(&b, "Page %d:\ntext %d\n", i, i)
	}
	return b.String()
}

func newSystem() (documents.System, *fakeExtractor) {
	ext := &fakeExtractor{}
	return documents.New(ext, testLogger()), ext
}

// encrypted returns an n-page document protected with password.
func encrypted(t *testing.T, n int, password string) []byte {
	t.Helper()

	sys, _ := newSystem()
	artifact, err := sys.Encrypt(context.Background(), pdftest.Numbered(n), password)
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	return artifact.Data
}

// pageWidths reads the MediaBox width of every page, which identifies the
// source page of each pdftest.Numbered page.
func pageWidths(t *testing.T, data []byte) []float64 {
	t.Helper()

	dims, err := api.PageDims(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("PageDims() error = %v", err)
	}

	widths := make([]float64, len(dims))
	for i, d := range dims {
		widths[i] = d.Width
	}
	return widths
}

func widths(pages ...int) []float64 {
	w := make([]float64, len(pages))
	for i, p := range pages {
		w[i] = pdftest.Width(p)
	}
	return w
}
