// Package pages parses page range expressions such as "1-3,5" into ordered
// sequences of 1-based page numbers.
package pages

import "errors"

// Domain errors for page selection.
var (
	ErrInvalidPageRange = errors.New("invalid page range")
	ErrPageOutOfRange   = errors.New("page number out of range")
)
