package main

import (
	"github.com/JaimeStill/pdf-tools/internal/api"
	"github.com/JaimeStill/pdf-tools/internal/config"
	"github.com/JaimeStill/pdf-tools/internal/infrastructure"
	"github.com/JaimeStill/pdf-tools/internal/ocr"
	"github.com/JaimeStill/pdf-tools/internal/ocr/mupdf"
	"github.com/JaimeStill/pdf-tools/internal/ocr/tesseract"
)

// newEngine selects the page rasterizer and the Tesseract recognizer.
// The cgo-backed engines are only linked into this binary.
func newEngine(cfg *config.OCRConfig, infra *infrastructure.Infrastructure) api.Engine {
	var rasterizer ocr.Rasterizer
	switch cfg.Renderer {
	case config.RendererMuPDF:
		rasterizer = mupdf.New()
	default:
		rasterizer = ocr.NewMagickRasterizer(infra.Storage)
	}

	return api.Engine{
		Rasterizer: rasterizer,
		Recognizer: tesseract.New(cfg.Languages, cfg.DPI),
	}
}
