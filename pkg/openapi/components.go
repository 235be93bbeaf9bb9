package openapi

import "maps"

// NewComponents returns the schemas and responses shared by every operation.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
				Required: []string{"error"},
			},
			"FieldErrors": {
				Type:                 "object",
				Description:          "Validation messages keyed by form field",
				AdditionalProperties: &Schema{Type: "array", Items: &Schema{Type: "string"}},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid request or document",
				Content: map[string]*MediaType{
					"application/json": {Schema: &Schema{
						Description: "An Error, or FieldErrors when form validation fails",
					}},
				},
			},
			"PayloadTooLarge": ResponseJSON("Request body exceeds the upload limit", "Error"),
			"ServerError":     ResponseJSON("Unexpected processing failure", "Error"),
		},
	}
}

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// AddSchemas merges schemas into the component set.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}
