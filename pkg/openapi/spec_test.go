package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/pdf-tools/pkg/openapi"
)

func TestSpec_MarshalJSON(t *testing.T) {
	spec := openapi.NewSpec("PDF Tools API", "1.0.0")
	spec.SetDescription("Tools")
	spec.AddServer("")
	spec.AddServer("http://localhost:8000")
	spec.AddTag([]string{"PDF"}, "first")
	spec.AddTag([]string{"PDF"}, "second")
	spec.AddOperation("/merge-pdf/", http.MethodPost, &openapi.Operation{
		Summary: "Merge",
		RequestBody: openapi.RequestBodyMultipart(map[string]*openapi.Schema{
			"pdf_files": {Type: "array", Items: openapi.FileField("PDF")},
		}, "pdf_files"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseFile("Merged", "application/pdf"),
			400: openapi.ResponseRef("BadRequest"),
		},
	})

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("document is not JSON: %v", err)
	}

	if doc["openapi"] != "3.1.0" {
		t.Errorf("openapi = %v, want 3.1.0", doc["openapi"])
	}
	if servers := doc["servers"].([]any); len(servers) != 1 {
		t.Errorf("servers = %v, want one entry", servers)
	}
	tags := doc["tags"].([]any)
	if len(tags) != 1 || tags[0].(map[string]any)["description"] != "first" {
		t.Errorf("tags = %v, want the first description only", tags)
	}

	post := doc["paths"].(map[string]any)["/merge-pdf/"].(map[string]any)["post"].(map[string]any)
	responses := post["responses"].(map[string]any)
	if ref := responses["400"].(map[string]any)["$ref"]; ref != "#/components/responses/BadRequest" {
		t.Errorf("400 $ref = %v", ref)
	}
	content := post["requestBody"].(map[string]any)["content"].(map[string]any)
	if _, ok := content["multipart/form-data"]; !ok {
		t.Error("request body is not multipart/form-data")
	}

	components := doc["components"].(map[string]any)
	for _, name := range []string{"BadRequest", "PayloadTooLarge", "ServerError"} {
		if _, ok := components["responses"].(map[string]any)[name]; !ok {
			t.Errorf("components.responses missing %s", name)
		}
	}
}

func TestServeSpec(t *testing.T) {
	w := httptest.NewRecorder()
	openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != `{"openapi":"3.1.0"}` {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Custom")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Custom" {
		t.Errorf("Title = %q, want Custom", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}
}

func TestConfig_Finalize_BlankValues(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "   ")

	cfg := &openapi.Config{Description: "  \n "}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "PDF Tools API" {
		t.Errorf("Title = %q, want default", cfg.Title)
	}
	if cfg.Description == "" || strings.TrimSpace(cfg.Description) != cfg.Description {
		t.Errorf("Description = %q, want trimmed default", cfg.Description)
	}
}
