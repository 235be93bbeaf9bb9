package ocr

import (
	"context"
	"fmt"

	"github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/image"
	"github.com/google/uuid"

	"github.com/JaimeStill/pdf-tools/pkg/storage"
)

const stagingPrefix = "ocr"

// MagickRasterizer renders pages through ImageMagick. The document is
// staged on disk because the renderer reads from a file path.
type MagickRasterizer struct {
	store storage.System
}

// NewMagickRasterizer creates a rasterizer that stages documents in store.
func NewMagickRasterizer(store storage.System) *MagickRasterizer {
	return &MagickRasterizer{store: store}
}

func (m *MagickRasterizer) Open(ctx context.Context, data []byte) (RenderSource, error) {
	key := fmt.Sprintf("%s/%s.pdf", stagingPrefix, uuid.New())

	if err := m.store.Store(ctx, key, data); err != nil {
		return nil, fmt.Errorf("stage document: %w", err)
	}

	src := &magickSource{
		ctx:       context.WithoutCancel(ctx),
		key:       key,
		store:     m.store,
		renderers: make(map[int]image.Renderer),
	}

	path, err := m.store.Path(ctx, key)
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("locate staged document: %w", err)
	}

	doc, err := document.Open(path, "application/pdf")
	if err != nil {
		src.Close()
		return nil, fmt.Errorf("open staged document: %w", err)
	}
	src.doc = doc

	return src, nil
}

type magickSource struct {
	ctx       context.Context
	key       string
	store     storage.System
	doc       document.Document
	renderers map[int]image.Renderer
}

func (s *magickSource) Render(page, dpi int) ([]byte, error) {
	renderer, err := s.renderer(dpi)
	if err != nil {
		return nil, err
	}

	p, err := s.doc.ExtractPage(page)
	if err != nil {
		return nil, fmt.Errorf("extract page %d: %w", page, err)
	}

	return p.ToImage(renderer, nil)
}

func (s *magickSource) renderer(dpi int) (image.Renderer, error) {
	if r, ok := s.renderers[dpi]; ok {
		return r, nil
	}

	r, err := image.NewImageMagickRenderer(config.ImageConfig{
		Format:  "png",
		DPI:     dpi,
		Options: map[string]any{"background": "white"},
	})
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	s.renderers[dpi] = r
	return r, nil
}

// Close closes the document and removes the staged file.
func (s *magickSource) Close() error {
	var closeErr error
	if s.doc != nil {
		closeErr = s.doc.Close()
	}
	if err := s.store.Delete(s.ctx, s.key); err != nil {
		return fmt.Errorf("remove staged document: %w", err)
	}
	return closeErr
}
