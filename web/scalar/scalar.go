// Package scalar serves the Scalar API reference page for the service's
// OpenAPI document.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/pdf-tools/pkg/routes"
)

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

type page struct {
	Title   string
	SpecURL string
}

// Handler renders the reference page once and serves it for every request.
func Handler(title, specURL string) (http.HandlerFunc, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, page{Title: title, SpecURL: specURL}); err != nil {
		return nil, err
	}
	body := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}, nil
}

// Routes returns the /docs group serving the reference page.
func Routes(title, specURL string) (routes.Group, error) {
	h, err := Handler(title, specURL)
	if err != nil {
		return routes.Group{}, err
	}

	return routes.Group{
		Prefix: "/docs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/", Handler: h},
		},
	}, nil
}
