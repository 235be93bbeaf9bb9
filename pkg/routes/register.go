package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/pdf-tools/pkg/openapi"
)

// Register adds every route of groups to mux under basePath and records
// each route's operation in spec. A pattern ending in "/" matches that
// exact path, and the same path without the trailing slash is served
// by the same handler.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		if spec != nil && group.Description != "" {
			spec.AddTag(group.Tags, group.Description)
		}
		registerGroup(mux, basePath, spec, group)
	}
}

func registerGroup(mux *http.ServeMux, prefix string, spec *openapi.Spec, group Group) {
	prefix += group.Prefix

	for _, route := range group.Routes {
		path := prefix + route.Pattern
		for _, pattern := range patterns(path) {
			mux.HandleFunc(route.Method+" "+pattern, route.Handler)
		}

		if spec != nil && route.OpenAPI != nil {
			op := route.OpenAPI
			if len(op.Tags) == 0 {
				op.Tags = group.Tags
			}
			spec.AddOperation(path, route.Method, op)
		}
	}

	for _, child := range group.Children {
		registerGroup(mux, prefix, spec, child)
	}
}

func patterns(path string) []string {
	if path == "" || path == "/" {
		return []string{"/{$}"}
	}
	if !strings.HasSuffix(path, "/") {
		return []string{path}
	}
	return []string{path + "{$}", strings.TrimSuffix(path, "/")}
}
