package openapi

import "maps"

// Components holds reusable schema and response definitions.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents returns components preloaded with the error envelope and
// one response per error kind.
func NewComponents() *Components {
	c := &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error", "code"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Example: "Cliente não encontrado"},
					"code": {
						Type: "string",
						Enum: []string{"INVALID_INPUT", "NOT_FOUND", "CONFLICT", "FORBIDDEN", "INTERNAL"},
					},
				},
			},
		},
		Responses: make(map[string]*Response),
	}

	for name, desc := range map[string]string{
		"BadRequest": "Invalid input",
		"NotFound":   "Resource not found",
		"Conflict":   "Conflicting state",
		"Forbidden":  "Operation not allowed in the current state",
		"Internal":   "Internal failure",
	} {
		c.Responses[name] = ResponseJSON(desc, "Error")
	}

	return c
}

// AddSchemas registers schemas, replacing any with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// PageResult returns the list envelope schema wrapping items of itemSchema.
func PageResult(itemSchema string) *Schema {
	return &Schema{
		Type:     "object",
		Required: []string{"data", "total", "page", "page_size", "total_pages", "has_next"},
		Properties: map[string]*Schema{
			"data":        {Type: "array", Items: SchemaRef(itemSchema)},
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
			"has_next":    {Type: "boolean"},
		},
	}
}
