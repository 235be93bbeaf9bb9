package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/pdf-tools/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		data     any
		wantBody string
	}{
		{"ok with map", http.StatusOK, map[string]string{"text": "Page 1:\nhello\n"}, `{"text":"Page 1:\nhello\n"}`},
		{"bad request with field errors", http.StatusBadRequest, map[string][]string{"password": {"Password cannot be empty."}}, `{"password":["Password cannot be empty."]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handlers.RespondJSON(w, tt.status, tt.data)

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			body, _ := io.ReadAll(resp.Body)
			var got, want any
			json.Unmarshal(body, &got)
			json.Unmarshal([]byte(tt.wantBody), &want)

			gotJSON, _ := json.Marshal(got)
			wantJSON, _ := json.Marshal(want)
			if string(gotJSON) != string(wantJSON) {
				t.Errorf("body = %s, want %s", gotJSON, wantJSON)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantLog string
	}{
		{"client error logs warning", http.StatusBadRequest, "level=WARN"},
		{"server error logs error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			w := httptest.NewRecorder()

			handlers.RespondError(w, logger, tt.status, errors.New("PDF file is encrypted"))

			resp := w.Result()
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != "PDF file is encrypted" {
				t.Errorf("error = %q, want %q", body["error"], "PDF file is encrypted")
			}

			if !strings.Contains(logs.String(), tt.wantLog) {
				t.Errorf("log output %q does not contain %q", logs.String(), tt.wantLog)
			}
		})
	}
}

func TestRespondFile(t *testing.T) {
	w := httptest.NewRecorder()
	data := []byte("%PDF-1.4 merged")

	handlers.RespondFile(w, "merged.pdf", "application/pdf", data)

	resp := w.Result()
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/pdf")
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="merged.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if cl := resp.Header.Get("Content-Length"); cl != "15" {
		t.Errorf("Content-Length = %q, want %q", cl, "15")
	}

	body, _ := io.ReadAll(resp.Body)
	if !bytes.Equal(body, data) {
		t.Errorf("body = %q, want %q", body, data)
	}
}
