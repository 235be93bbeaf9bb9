package api

import (
	"github.com/JaimeStill/pdf-tools/internal/config"
	"github.com/JaimeStill/pdf-tools/internal/documents"
	"github.com/JaimeStill/pdf-tools/internal/ocr"
)

// Engine supplies the rendering and recognition backends used when a
// page has no embedded text.
type Engine struct {
	Rasterizer ocr.Rasterizer
	Recognizer ocr.Recognizer
}

// Domain holds the domain systems that comprise the API.
type Domain struct {
	Documents documents.System
}

// NewDomain creates the domain systems from the API runtime.
func NewDomain(runtime *Runtime, engine Engine, cfg *config.OCRConfig) *Domain {
	extractor := ocr.NewExtractor(
		ocr.NewTextLayer(),
		engine.Rasterizer,
		engine.Recognizer,
		cfg.DPI,
		runtime.Logger,
	)

	return &Domain{
		Documents: documents.New(extractor, runtime.Logger),
	}
}
