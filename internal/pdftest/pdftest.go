// Package pdftest builds small, valid PDF documents for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
)

// Page describes one generated page. An empty Text produces a page
// with no text layer.
type Page struct {
	Text   string
	Width  float64
	Height float64
}

// Width returns the MediaBox width Numbered gives page n, so tests can
// identify a source page after it has been copied into another document.
func Width(n int) float64 {
	return float64(100 + n)
}

// Marker returns the text Numbered writes on page n.
func Marker(n int) string {
	return fmt.Sprintf("Marker %d", n)
}

// Numbered builds a document of n pages. Page k carries Marker(k) and
// has width Width(k).
func Numbered(n int) []byte {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Text: Marker(i + 1), Width: Width(i + 1)}
	}
	return Build(pages...)
}

// Blank builds a document of n pages without any text.
func Blank(n int) []byte {
	pages := make([]Page, n)
	for i := range pages {
		pages[i] = Page{Width: Width(i + 1)}
	}
	return Build(pages...)
}

// Build writes a PDF 1.4 document with a classic cross-reference table.
func Build(pages ...Page) []byte {
	var b bytes.Buffer
	var offsets []int

	object := func(body string) {
		offsets = append(offsets, b.Len())
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	b.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	object("<< /Type /Catalog /Pages 2 0 R >>")
	object(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)))
	object("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, p := range pages {
		width, height := p.Width, p.Height
		if width <= 0 {
			width = 612
		}
		if height <= 0 {
			height = 792
		}

		object(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %g] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			width, height, 5+2*i,
		))

		var content string
		if p.Text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 10 20 Td (%s) Tj ET", escape(p.Text))
		}
		object(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n", len(offsets)+1)
	b.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	return b.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)
	return r.Replace(s)
}
