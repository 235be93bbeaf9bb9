package documents

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/JaimeStill/pdf-tools/pkg/handlers"
	"github.com/JaimeStill/pdf-tools/pkg/routes"
)

// Actions named in 500 responses.
const (
	actionProcessing = "PDF processing"
	actionEncryption = "PDF encryption"
	actionOCR        = "OCR processing"
)

// Handler provides HTTP endpoints for PDF operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a documents handler. Request bodies larger than
// maxUploadSize are rejected with 413.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "documents"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the PDF endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"PDF Tools"},
		Description: "Merge, split, encrypt, and extract text from uploaded PDF files",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/merge-pdf/", Handler: h.Merge, OpenAPI: Spec.Merge},
			{Method: "POST", Pattern: "/split-pdf/", Handler: h.Split, OpenAPI: Spec.Split},
			{Method: "POST", Pattern: "/split-pdf-by-page/", Handler: h.SplitToPages, OpenAPI: Spec.SplitToPages},
			{Method: "POST", Pattern: "/encrypt-pdf/", Handler: h.Encrypt, OpenAPI: Spec.Encrypt},
			{Method: "POST", Pattern: "/ocr-pdf/", Handler: h.OCR, OpenAPI: Spec.OCR},
		},
	}
}

func (h *Handler) Merge(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, actionProcessing)
	if !ok {
		return
	}
	defer form.RemoveAll()

	req, err := parseMerge(form)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	artifact, err := h.sys.Merge(r.Context(), req.Files)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	h.respondArtifact(w, artifact)
}

func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, actionProcessing)
	if !ok {
		return
	}
	defer form.RemoveAll()

	req, err := parseSplit(form)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	artifact, err := h.sys.SplitByRange(r.Context(), req.File, req.PageRanges)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	h.respondArtifact(w, artifact)
}

func (h *Handler) SplitToPages(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, actionProcessing)
	if !ok {
		return
	}
	defer form.RemoveAll()

	req, err := parseFile(form)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	artifact, err := h.sys.SplitToPages(r.Context(), req.File)
	if err != nil {
		h.respondError(w, err, actionProcessing)
		return
	}

	h.respondArtifact(w, artifact)
}

func (h *Handler) Encrypt(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, actionEncryption)
	if !ok {
		return
	}
	defer form.RemoveAll()

	req, err := parseEncrypt(form)
	if err != nil {
		h.respondError(w, err, actionEncryption)
		return
	}

	artifact, err := h.sys.Encrypt(r.Context(), req.File, req.Password)
	if err != nil {
		h.respondError(w, err, actionEncryption)
		return
	}

	h.respondArtifact(w, artifact)
}

// OCR responds with {"text": ...} by default, or with a text attachment
// when format is "txt".
func (h *Handler) OCR(w http.ResponseWriter, r *http.Request) {
	form, ok := h.form(w, r, actionOCR)
	if !ok {
		return
	}
	defer form.RemoveAll()

	req, err := parseOCR(form)
	if err != nil {
		h.respondError(w, err, actionOCR)
		return
	}

	artifact, err := h.sys.ExtractText(r.Context(), req.File)
	if err != nil {
		h.respondError(w, err, actionOCR)
		return
	}

	if req.Format == FormatTXT {
		h.respondArtifact(w, artifact)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"text": artifact.Text()})
}

func (h *Handler) form(w http.ResponseWriter, r *http.Request, action string) (*multipart.Form, bool) {
	form, err := readForm(w, r, h.maxUploadSize)
	if err != nil {
		h.respondError(w, err, action)
		return nil, false
	}
	return form, true
}

func (h *Handler) respondArtifact(w http.ResponseWriter, artifact *Artifact) {
	handlers.RespondFile(w, artifact.Filename, artifact.ContentType, artifact.Data)
}

// respondError writes field errors as the response body itself, other
// client errors as {"error": ...}, and wraps anything unexpected with
// the action that failed.
func (h *Handler) respondError(w http.ResponseWriter, err error, action string) {
	var fields FieldErrors
	if errors.As(err, &fields) {
		h.logger.Warn("request validation failed", "error", err)
		handlers.RespondJSON(w, http.StatusBadRequest, fields)
		return
	}

	status := MapHTTPStatus(err)
	if status == http.StatusInternalServerError {
		err = fmt.Errorf("Server error during %s: %w", action, err)
	}

	handlers.RespondError(w, h.logger, status, err)
}
