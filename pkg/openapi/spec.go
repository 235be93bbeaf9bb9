package openapi

import (
	"encoding/json"
	"net/http"
	"slices"
)

// NewSpec creates an empty OpenAPI 3.1 document with the shared components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI:    "3.1.0",
		Info:       &Info{Title: title, Version: version},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(description string) {
	s.Info.Description = description
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddTag records the description of each named tag once.
func (s *Spec) AddTag(names []string, description string) {
	for _, name := range names {
		if slices.ContainsFunc(s.Tags, func(t *Tag) bool { return t.Name == name }) {
			continue
		}
		s.Tags = append(s.Tags, &Tag{Name: name, Description: description})
	}
}

// AddOperation sets the operation for method on path.
func (s *Spec) AddOperation(path, method string, op *Operation) {
	item := s.Paths[path]
	if item == nil {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch method {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodDelete:
		item.Delete = op
	}
}

// MarshalJSON renders the document as indented JSON.
func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// ServeSpec returns a handler that writes a pre-rendered document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
