package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/pdf-tools/pkg/openapi"
	"github.com/JaimeStill/pdf-tools/pkg/routes"
)

func named(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(name))
	}
}

func TestRegister_Patterns(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, routes.Group{
		Prefix: "/tools",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/merge/", Handler: named("merge")},
			{Method: "GET", Pattern: "/status", Handler: named("status")},
			{Method: "GET", Pattern: "/", Handler: named("index")},
		},
		Children: []routes.Group{
			{
				Prefix: "/nested",
				Routes: []routes.Route{{Method: "GET", Pattern: "/leaf/", Handler: named("leaf")}},
			},
		},
	})

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{"POST", "/api/tools/merge/", http.StatusOK, "merge"},
		{"POST", "/api/tools/merge", http.StatusOK, "merge"},
		{"POST", "/api/tools/merge/extra", http.StatusNotFound, ""},
		{"GET", "/api/tools/merge/", http.StatusMethodNotAllowed, ""},
		{"GET", "/api/tools/status", http.StatusOK, "status"},
		{"GET", "/api/tools/status/", http.StatusNotFound, ""},
		{"GET", "/api/tools/", http.StatusOK, "index"},
		{"GET", "/api/tools", http.StatusOK, "index"},
		{"GET", "/api/tools/nested/leaf", http.StatusOK, "leaf"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestRegister_RootPattern(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "", nil, routes.Group{
		Routes: []routes.Route{{Method: "GET", Pattern: "/", Handler: named("root")}},
	})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET / status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/anything", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /anything status = %d, want 404", w.Code)
	}
}

func TestRegister_OpenAPI(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	op := &openapi.Operation{Summary: "Merge"}
	tagged := &openapi.Operation{Summary: "Tagged", Tags: []string{"Custom"}}

	routes.Register(http.NewServeMux(), "", spec, routes.Group{
		Tags:        []string{"PDF"},
		Description: "PDF operations",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/merge/", Handler: named("merge"), OpenAPI: op},
			{Method: "GET", Pattern: "/tagged", Handler: named("tagged"), OpenAPI: tagged},
			{Method: "GET", Pattern: "/hidden", Handler: named("hidden")},
		},
	})

	item, ok := spec.Paths["/merge/"]
	if !ok || item.Post != op {
		t.Fatalf("spec.Paths[/merge/] = %+v, want POST operation", item)
	}
	if len(op.Tags) != 1 || op.Tags[0] != "PDF" {
		t.Errorf("op.Tags = %v, want group tags", op.Tags)
	}
	if tagged.Tags[0] != "Custom" {
		t.Errorf("tagged.Tags = %v, want explicit tags kept", tagged.Tags)
	}
	if _, ok := spec.Paths["/hidden"]; ok {
		t.Error("route without operation added to spec")
	}
	if len(spec.Tags) != 1 || spec.Tags[0].Description != "PDF operations" {
		t.Errorf("spec.Tags = %+v, want one described tag", spec.Tags)
	}
}
