package documents

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"slices"
	"strings"
)

// Output formats accepted by the OCR endpoint.
const (
	FormatJSON = "json"
	FormatTXT  = "txt"
)

// Multipart field names.
const (
	FieldFiles      = "pdf_files"
	FieldFile       = "pdf_file"
	FieldPageRanges = "page_ranges"
	FieldPassword   = "password"
	FieldFormat     = "format"
)

// maxMemory is the share of a multipart body held in memory; larger
// file parts spill to temporary files removed after the request.
const maxMemory = 32 << 20

// pageRangesPattern accepts comma-separated pages and start-end ranges,
// allowing whitespace around every number.
var pageRangesPattern = regexp.MustCompile(`^\s*\d+\s*(-\s*\d+\s*)?(,\s*\d+\s*(-\s*\d+\s*)?)*$`)

// FieldErrors maps request fields to validation messages. It is returned
// as the JSON body of a 400 response.
type FieldErrors map[string][]string

func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(f[field], " ")))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

func (f FieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return f
}

type MergeRequest struct {
	Files [][]byte
}

type SplitRequest struct {
	File       []byte
	PageRanges string
}

type FileRequest struct {
	File []byte
}

type EncryptRequest struct {
	File     []byte
	Password string
}

type OCRRequest struct {
	File   []byte
	Format string
}

func parseMerge(form *multipart.Form) (MergeRequest, error) {
	errs := FieldErrors{}
	files, err := readFiles(form, FieldFiles)
	if err != nil {
		return MergeRequest{}, err
	}
	if len(files) == 0 {
		errs.Add(FieldFiles, "This field is required.")
	}
	return MergeRequest{Files: files}, errs.err()
}

func parseSplit(form *multipart.Form) (SplitRequest, error) {
	errs := FieldErrors{}
	file, err := requireFile(form, errs)
	if err != nil {
		return SplitRequest{}, err
	}

	expr := strings.TrimSpace(formValue(form, FieldPageRanges))
	switch {
	case expr == "":
		errs.Add(FieldPageRanges, "This field is required.")
	case !pageRangesPattern.MatchString(expr):
		errs.Add(FieldPageRanges, "Invalid page ranges format. Use a format like '1-3,5,7-9'.")
	}

	return SplitRequest{File: file, PageRanges: expr}, errs.err()
}

func parseFile(form *multipart.Form) (FileRequest, error) {
	errs := FieldErrors{}
	file, err := requireFile(form, errs)
	if err != nil {
		return FileRequest{}, err
	}
	return FileRequest{File: file}, errs.err()
}

func parseEncrypt(form *multipart.Form) (EncryptRequest, error) {
	errs := FieldErrors{}
	file, err := requireFile(form, errs)
	if err != nil {
		return EncryptRequest{}, err
	}

	password := formValue(form, FieldPassword)
	if strings.TrimSpace(password) == "" {
		errs.Add(FieldPassword, "Password cannot be empty.")
	}

	return EncryptRequest{File: file, Password: password}, errs.err()
}

func parseOCR(form *multipart.Form) (OCRRequest, error) {
	errs := FieldErrors{}
	file, err := requireFile(form, errs)
	if err != nil {
		return OCRRequest{}, err
	}

	format := strings.TrimSpace(formValue(form, FieldFormat))
	switch format {
	case "":
		format = FormatJSON
	case FormatJSON, FormatTXT:
	default:
		errs.Add(FieldFormat, fmt.Sprintf("%q is not a valid choice.", format))
	}

	return OCRRequest{File: file, Format: format}, errs.err()
}

// readForm bounds the request body at maxUploadSize and parses it as
// multipart form data. Callers must call RemoveAll on the returned form.
func readForm(w http.ResponseWriter, r *http.Request, maxUploadSize int64) (*multipart.Form, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: limit is %d bytes", ErrFileTooLarge, tooLarge.Limit)
		}
		errs := FieldErrors{}
		errs.Add("non_field_errors", fmt.Sprintf("Invalid multipart form data: %v", err))
		return nil, errs
	}

	return r.MultipartForm, nil
}

func requireFile(form *multipart.Form, errs FieldErrors) ([]byte, error) {
	files, err := readFiles(form, FieldFile)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		errs.Add(FieldFile, "No file was submitted.")
		return nil, nil
	}
	return files[0], nil
}

func readFiles(form *multipart.Form, field string) ([][]byte, error) {
	headers := form.File[field]
	files := make([][]byte, 0, len(headers))

	for _, fh := range headers {
		data, err := readFile(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, data)
	}

	return files, nil
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %s: %w", fh.Filename, err)
	}
	return data, nil
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
