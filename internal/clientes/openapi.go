package clientes

import (
	"maps"

	"github.com/JaimeStill/contratos/pkg/openapi"
)

type spec struct {
	List      *openapi.Operation
	Find      *openapi.Operation
	Contratos *openapi.Operation
	Create    *openapi.Operation
	Replace   *openapi.Operation
	Update    *openapi.Operation
	Delete    *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the client endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List clients",
		Description: "Returns a page of clients, newest first. search matches razao_social and cnpj",
		Parameters: append(openapi.PageParams(),
			openapi.QueryParam("cnpj", "string", "CNPJ contains; punctuation is ignored", false),
			openapi.QueryParam("razao_social", "string", "Corporate name contains", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of clients", "ClientePageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find client by ID",
		Description: "Returns the client together with all of its contracts",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Client UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Client with contracts", "ClienteDetail"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Contratos: &openapi.Operation{
		Summary:    "List client contracts",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Client UUID")},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Contracts of the client, newest first",
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("ClienteContrato")}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create client",
		Description: "Validates the CNPJ check digits and stores it as 14 digits",
		RequestBody: openapi.RequestBodyJSON("CreateClienteCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Client created", "Cliente"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Replace: &openapi.Operation{
		Summary:     "Replace client",
		Description: "Overwrites every client field",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Client UUID")},
		RequestBody: openapi.RequestBodyJSON("CreateClienteCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Client replaced", "Cliente"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update client",
		Description: "Applies the fields present in the body",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Client UUID")},
		RequestBody: openapi.RequestBodyJSON("UpdateClienteCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Client updated", "Cliente"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete client",
		Description: "Refused while any contract references the client",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Client UUID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Client deleted"},
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
}

func clienteFields() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"razao_social":        {Type: "string", Example: "Acme Ltda"},
		"cnpj":                {Type: "string", Example: "11.222.333/0001-81"},
		"endereco_completo":   openapi.Nullable("string"),
		"cidade_estado":       openapi.Nullable("string"),
		"assinante_nome":      openapi.Nullable("string"),
		"assinante_email":     {Type: []string{"string", "null"}, Format: "email"},
		"financeiro_nome":     openapi.Nullable("string"),
		"financeiro_email":    {Type: []string{"string", "null"}, Format: "email"},
		"financeiro_telefone": openapi.Nullable("string"),
	}
}

// Schemas returns the client domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	cliente := clienteFields()
	cliente["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	cliente["asaas_customer_id"] = openapi.Nullable("string")
	cliente["cnpj"] = &openapi.Schema{Type: "string", Pattern: `^\d{14}$`, Example: "11222333000181"}
	cliente["created_at"] = &openapi.Schema{Type: "string", Format: "date-time"}

	detail := maps.Clone(cliente)
	detail["contratos"] = &openapi.Schema{Type: "array", Items: openapi.SchemaRef("ClienteContrato")}

	return map[string]*openapi.Schema{
		"Cliente":           {Type: "object", Properties: cliente},
		"ClienteDetail":     {Type: "object", Properties: detail},
		"ClientePageResult": openapi.PageResult("Cliente"),
		"ClienteContrato": {
			Type:        "object",
			Description: "Full contract row with the project summary",
			Properties: map[string]*openapi.Schema{
				"id":                       {Type: "string", Format: "uuid"},
				"cliente_id":               {Type: "string", Format: "uuid"},
				"projeto_id":               {Type: "string", Format: "uuid"},
				"url_contrato_gerado":      openapi.Nullable("string"),
				"clicksign_document_key":   openapi.Nullable("string"),
				"asaas_subscription_id":    openapi.Nullable("string"),
				"asaas_setup_payment_id":   openapi.Nullable("string"),
				"valor_mensalidade":        {Type: "string", Example: "1500.00"},
				"valor_setup":              {Type: "string", Example: "3000.00"},
				"plano_nome":               {Type: "string"},
				"prazo_implementacao_dias": openapi.Nullable("integer"),
				"provedor_openai":          openapi.Nullable("string"),
				"forma_pagamento":          openapi.Nullable("string"),
				"observacoes_ia":           openapi.Nullable("string"),
				"assinante_venda_nome":     openapi.Nullable("string"),
				"assinante_venda_email":    openapi.Nullable("string"),
				"status":                   {Type: "string"},
				"created_at":               {Type: "string", Format: "date-time"},
				"projeto": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"id":           {Type: "string", Format: "uuid"},
						"nome_projeto": {Type: "string"},
					},
				},
			},
		},
		"CreateClienteCommand": {
			Type:       "object",
			Required:   []string{"razao_social", "cnpj"},
			Properties: clienteFields(),
		},
		"UpdateClienteCommand": {
			Type:       "object",
			Properties: clienteFields(),
		},
	}
}
