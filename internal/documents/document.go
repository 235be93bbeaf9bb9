package documents

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	api.DisableConfigDir()
}

// Document is a decoded PDF. Operations never modify a Document;
// they write new documents from its pages.
type Document struct {
	data      []byte
	ctx       *model.Context
	encrypted bool
}

// Decode reads and validates PDF bytes. A document that needs a password
// to open decodes successfully with Encrypted reporting true.
func Decode(data []byte) (*Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrInvalidDocument)
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), newConfiguration())
	if err != nil {
		if isPasswordError(err) {
			return &Document{data: data, encrypted: true}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &Document{
		data:      data,
		ctx:       ctx,
		encrypted: ctx.Encrypt != nil,
	}, nil
}

// Encrypted reports whether the source document carries PDF encryption,
// with or without a user password.
func (d *Document) Encrypted() bool {
	return d.encrypted
}

// PageCount returns the number of pages. Encrypted documents report zero.
func (d *Document) PageCount() int {
	if d.ctx == nil {
		return 0
	}
	return d.ctx.PageCount
}

// Bytes returns the source bytes the document was decoded from.
func (d *Document) Bytes() []byte {
	return d.data
}

// Select writes a new document holding the given 1-based pages in the
// given order. Repeated page numbers produce repeated pages.
func (d *Document) Select(pages []int) ([]byte, error) {
	if d.ctx == nil {
		return nil, ErrEncrypted
	}

	out, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return nil, fmt.Errorf("extract pages: %w", err)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(out, &buf); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}

	return buf.Bytes(), nil
}

// Page writes a single-page document holding the given 1-based page.
func (d *Document) Page(n int) ([]byte, error) {
	if d.ctx == nil {
		return nil, ErrEncrypted
	}

	r, err := api.ExtractPage(d.ctx, n)
	if err != nil {
		return nil, fmt.Errorf("extract page %d: %w", n, err)
	}

	return io.ReadAll(r)
}

// isPasswordError reports whether decoding stopped at the password check.
// pdfcpu returns ErrWrongPassword when the user password is missing or
// wrong; its other password errors belong to password change commands.
func isPasswordError(err error) bool {
	return errors.Is(err, pdfcpu.ErrWrongPassword)
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}
