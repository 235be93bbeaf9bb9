// Package routes describes HTTP endpoints as data and registers them on a
// ServeMux together with their OpenAPI operations.
package routes

import (
	"net/http"

	"github.com/JaimeStill/pdf-tools/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
