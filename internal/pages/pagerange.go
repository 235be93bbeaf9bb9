package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector is one comma-separated token of a page range expression:
// a single page (Start == End) or an inclusive interval.
type Selector struct {
	Token string
	Start int
	End   int
}

// Single reports whether the selector names exactly one page.
func (s Selector) Single() bool {
	return s.Start == s.End
}

// Pages returns the selector's page numbers in ascending order.
func (s Selector) Pages() []int {
	pages := make([]int, 0, s.End-s.Start+1)
	for i := s.Start; i <= s.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Parse resolves a page range expression against a document of totalPages pages.
// Supports formats: "1", "1-5", "1,3,5", "1-5,10,15-20".
// Token order is kept and pages named more than once are repeated:
// "1,1-2" yields [1 1 2].
func Parse(expr string, totalPages int) ([]int, error) {
	selectors, err := ParseSelectors(expr)
	if err != nil {
		return nil, err
	}
	return Resolve(selectors, totalPages)
}

// ParseSelectors checks the syntax of a page range expression without
// knowing the document length. Every token must be a positive page number
// or a start-end interval with start <= end.
func ParseSelectors(expr string) ([]Selector, error) {
	tokens := strings.Split(expr, ",")
	selectors := make([]Selector, 0, len(tokens))

	for _, token := range tokens {
		sel, err := parseToken(strings.TrimSpace(token))
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}

	return selectors, nil
}

// Resolve checks each selector against [1, totalPages] and expands the
// selectors, in order, into page numbers.
func Resolve(selectors []Selector, totalPages int) ([]int, error) {
	if len(selectors) == 0 {
		return nil, fmt.Errorf("%w: no pages selected", ErrInvalidPageRange)
	}

	var pages []int
	for _, sel := range selectors {
		if sel.Start > totalPages || sel.End > totalPages {
			return nil, fmt.Errorf(
				"%w: %q: pages must be within [1, %d]",
				ErrPageOutOfRange, sel.Token, totalPages,
			)
		}
		pages = append(pages, sel.Pages()...)
	}

	return pages, nil
}

func parseToken(token string) (Selector, error) {
	if token == "" {
		return Selector{}, fmt.Errorf("%w: empty page token", ErrInvalidPageRange)
	}

	if !strings.Contains(token, "-") {
		page, err := parsePage(token)
		if err != nil {
			return Selector{}, fmt.Errorf("%w: invalid page %q", ErrInvalidPageRange, token)
		}
		if page < 1 {
			return Selector{}, fmt.Errorf("%w: %q: pages start at 1", ErrPageOutOfRange, token)
		}
		return Selector{Token: token, Start: page, End: page}, nil
	}

	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return Selector{}, fmt.Errorf("%w: invalid range %q", ErrInvalidPageRange, token)
	}

	start, err := parsePage(parts[0])
	if err != nil {
		return Selector{}, fmt.Errorf("%w: invalid start in %q", ErrInvalidPageRange, token)
	}
	end, err := parsePage(parts[1])
	if err != nil {
		return Selector{}, fmt.Errorf("%w: invalid end in %q", ErrInvalidPageRange, token)
	}

	if start < 1 {
		return Selector{}, fmt.Errorf("%w: %q: start page must be >= 1", ErrInvalidPageRange, token)
	}
	if end < start {
		return Selector{}, fmt.Errorf("%w: %q: end page is before start page", ErrInvalidPageRange, token)
	}

	return Selector{Token: token, Start: start, End: end}, nil
}

func parsePage(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
