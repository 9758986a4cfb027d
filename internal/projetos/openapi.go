package projetos

import "github.com/JaimeStill/contratos/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// projetoBody accepts the fields as JSON, or as a multipart form that may
// also carry the template PDF.
func projetoBody(schemaName string, required bool) *openapi.RequestBody {
	form := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"nome_projeto": {Type: "string"},
			"descricao":    {Type: "string"},
			FileField:      {Type: "string", Format: "binary", Description: "Template PDF"},
		},
	}
	if required {
		form.Required = []string{"nome_projeto"}
	}

	return &openapi.RequestBody{
		Required: true,
		Content: map[string]*openapi.MediaType{
			"application/json":    {Schema: openapi.SchemaRef(schemaName)},
			"multipart/form-data": {Schema: form},
		},
	}
}

// Spec contains OpenAPI operation definitions for the project endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List projects",
		Description: "Returns a page of template projects, newest first",
		Parameters: append(openapi.PageParams(),
			openapi.QueryParam("nome", "string", "Project name contains", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of projects", "ProjetoPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find project by ID",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Project UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Project", "Projeto"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create project",
		Description: "Stores the template PDF, when present, and records its text as template_html",
		RequestBody: projetoBody("CreateProjetoCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Project created", "Projeto"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseRef("Internal"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update project",
		Description: "A new PDF replaces the stored template; the previous file is removed",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Project UUID")},
		RequestBody: projetoBody("UpdateProjetoCommand", false),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Project updated", "Projeto"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete project",
		Description: "Refused while any contract references the project",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Project UUID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Project deleted"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

// Schemas returns the project domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Projeto": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "string", Format: "uuid"},
				"nome_projeto":      {Type: "string"},
				"descricao":         openapi.Nullable("string"),
				"template_pdf_path": openapi.Nullable("string"),
				"template_html":     {Type: []string{"string", "null"}, Description: "Plain text extracted from the template PDF"},
				"created_at":        {Type: "string", Format: "date-time"},
			},
		},
		"ProjetoPageResult": openapi.PageResult("Projeto"),
		"CreateProjetoCommand": {
			Type:     "object",
			Required: []string{"nome_projeto"},
			Properties: map[string]*openapi.Schema{
				"nome_projeto": {Type: "string", Example: "Implantação Padrão"},
				"descricao":    openapi.Nullable("string"),
			},
		},
		"UpdateProjetoCommand": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"nome_projeto": {Type: "string"},
				"descricao":    openapi.Nullable("string"),
			},
		},
	}
}
