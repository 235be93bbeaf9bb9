package documents

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/pdf-tools/internal/pages"
)

// Domain errors for PDF operations.
var (
	ErrInvalidDocument = errors.New("invalid or corrupted PDF file")
	ErrEncrypted       = errors.New("PDF file is encrypted")
	ErrEmptyDocument   = errors.New("PDF file has no pages")
	ErrInvalidPassword = errors.New("password cannot be empty")
	ErrNoFiles         = errors.New("no PDF files provided")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
)

// IsValidation reports whether err was caused by the request content
// rather than by the service.
func IsValidation(err error) bool {
	var fields FieldErrors
	switch {
	case errors.As(err, &fields),
		errors.Is(err, ErrInvalidDocument),
		errors.Is(err, ErrEncrypted),
		errors.Is(err, ErrEmptyDocument),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrNoFiles),
		errors.Is(err, pages.ErrInvalidPageRange),
		errors.Is(err, pages.ErrPageOutOfRange):
		return true
	}
	return false
}

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if IsValidation(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
