// Package tesseract recognizes text in page images with the Tesseract engine
// through gosseract. It links against libtesseract and is only imported by
// the server binary.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer runs Tesseract on encoded images. A client is created per
// call because gosseract clients are not safe for concurrent use.
type Recognizer struct {
	languages []string
	dpi       int
}

// New creates a Recognizer for the given Tesseract language codes.
// An empty list uses the engine default.
func New(languages []string, dpi int) *Recognizer {
	return &Recognizer{languages: languages, dpi: dpi}
}

func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c := gosseract.NewClient()
	defer c.Close()

	if err := c.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if r.dpi > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(r.dpi)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}

	return text, nil
}
