package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JaimeStill/pdf-tools/internal/ocr"
)

const (
	EnvOCRRenderer  = "OCR_RENDERER"
	EnvOCRDPI       = "OCR_DPI"
	EnvOCRLanguages = "OCR_LANGUAGES"
)

// Renderer names the page rasterizer used ahead of OCR.
type Renderer string

const (
	// RendererImageMagick renders through ImageMagick from a staged file.
	RendererImageMagick Renderer = "imagemagick"
	// RendererMuPDF renders in memory through MuPDF.
	RendererMuPDF Renderer = "mupdf"
)

const maxDPI = 1200

// OCRConfig contains settings for text extraction from pages that lack
// an embedded text layer.
type OCRConfig struct {
	Renderer  Renderer `toml:"renderer"`
	DPI       int      `toml:"dpi"`
	Languages []string `toml:"languages"`
}

func (c *OCRConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

func (c *OCRConfig) Merge(overlay *OCRConfig) {
	if overlay.Renderer != "" {
		c.Renderer = overlay.Renderer
	}
	if overlay.DPI != 0 {
		c.DPI = overlay.DPI
	}
	if overlay.Languages != nil {
		c.Languages = overlay.Languages
	}
}

func (c *OCRConfig) loadDefaults() {
	if c.Renderer == "" {
		c.Renderer = RendererImageMagick
	}
	if c.DPI == 0 {
		c.DPI = ocr.DefaultDPI
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{"eng"}
	}
}

func (c *OCRConfig) loadEnv() error {
	if v := os.Getenv(EnvOCRRenderer); v != "" {
		c.Renderer = Renderer(strings.ToLower(v))
	}
	if v := os.Getenv(EnvOCRDPI); v != "" {
		dpi, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvOCRDPI, err)
		}
		c.DPI = dpi
	}
	if v := os.Getenv(EnvOCRLanguages); v != "" {
		var langs []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		c.Languages = langs
	}
	return nil
}

func (c *OCRConfig) validate() error {
	switch c.Renderer {
	case RendererImageMagick, RendererMuPDF:
	default:
		return fmt.Errorf("invalid renderer: %s (must be imagemagick or mupdf)", c.Renderer)
	}
	if c.DPI < 1 || c.DPI > maxDPI {
		return fmt.Errorf("dpi must be between 1 and %d: %d", maxDPI, c.DPI)
	}
	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one language required")
	}
	return nil
}
