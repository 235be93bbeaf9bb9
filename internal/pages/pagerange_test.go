package pages_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/JaimeStill/pdf-tools/internal/pages"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		totalPages int
		want       []int
		wantErr    error
	}{
		{
			"single page",
			"1",
			10,
			[]int{1},
			nil,
		},
		{
			"single page last",
			"10",
			10,
			[]int{10},
			nil,
		},
		{
			"simple range",
			"1-5",
			10,
			[]int{1, 2, 3, 4, 5},
			nil,
		},
		{
			"range and page",
			"1-3,5",
			5,
			[]int{1, 2, 3, 5},
			nil,
		},
		{
			"complex expression",
			"1-3,5,7-9",
			10,
			[]int{1, 2, 3, 5, 7, 8, 9},
			nil,
		},
		{
			"with spaces",
			" 1 , 3 - 5 , 8 ",
			10,
			[]int{1, 3, 4, 5, 8},
			nil,
		},
		{
			"token order preserved",
			"9,1,5",
			10,
			[]int{9, 1, 5},
			nil,
		},
		{
			"duplicate pages kept",
			"1,1-2",
			5,
			[]int{1, 1, 2},
			nil,
		},
		{
			"overlapping ranges kept",
			"1-3,2-4",
			5,
			[]int{1, 2, 3, 2, 3, 4},
			nil,
		},
		{
			"single page range",
			"4-4",
			5,
			[]int{4},
			nil,
		},
		{
			"empty string",
			"",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"trailing comma",
			"1,",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"only commas",
			",,,",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"page zero",
			"0",
			5,
			nil,
			pages.ErrPageOutOfRange,
		},
		{
			"page exceeds total",
			"6",
			5,
			nil,
			pages.ErrPageOutOfRange,
		},
		{
			"range exceeds total",
			"4-6",
			5,
			nil,
			pages.ErrPageOutOfRange,
		},
		{
			"start greater than end",
			"3-1",
			5,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"reversed range beyond total",
			"9-7",
			5,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"range starting at zero",
			"0-2",
			5,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"invalid page format",
			"abc",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"invalid range format",
			"1-abc",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"open start range",
			"-3",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"open end range",
			"3-",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
		{
			"three part range",
			"1-2-3",
			10,
			nil,
			pages.ErrInvalidPageRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pages.Parse(tt.expr, tt.totalPages)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %v", tt.wantErr)
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() error = %v, want nil", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse_OutOfRangeMessage(t *testing.T) {
	_, err := pages.Parse("6", 5)
	if err == nil {
		t.Fatal("Parse() error = nil, want error")
	}

	msg := err.Error()
	if !strings.Contains(msg, `"6"`) {
		t.Errorf("error %q does not name the offending token", msg)
	}
	if !strings.Contains(msg, "[1, 5]") {
		t.Errorf("error %q does not cite the valid range", msg)
	}
}

func TestParseSelectors(t *testing.T) {
	got, err := pages.ParseSelectors("2,4-6")
	if err != nil {
		t.Fatalf("ParseSelectors() error = %v", err)
	}

	want := []pages.Selector{
		{Token: "2", Start: 2, End: 2},
		{Token: "4-6", Start: 4, End: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSelectors() = %+v, want %+v", got, want)
	}

	if !got[0].Single() {
		t.Error("Single() = false for a one-page selector")
	}
	if got[1].Single() {
		t.Error("Single() = true for an interval selector")
	}
}

func TestParseSelectors_IgnoresDocumentBounds(t *testing.T) {
	if _, err := pages.ParseSelectors("100-200"); err != nil {
		t.Errorf("ParseSelectors() error = %v, want nil", err)
	}
}

func TestResolve_NoSelectors(t *testing.T) {
	_, err := pages.Resolve(nil, 5)
	if !errors.Is(err, pages.ErrInvalidPageRange) {
		t.Errorf("Resolve() error = %v, want %v", err, pages.ErrInvalidPageRange)
	}
}
