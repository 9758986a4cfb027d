package contratos

import (
	"maps"

	"github.com/JaimeStill/contratos/pkg/openapi"
)

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the contract endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List contracts",
		Description: "Returns a page of contracts with client and project summaries, newest first",
		Parameters: append(openapi.PageParams(),
			openapi.QueryParam("status", "string", "Status filter; repeat or comma-separate for several", false),
			openapi.QueryParam("cliente_id", "string", "Client UUID", false),
			openapi.QueryParam("projeto_id", "string", "Project UUID", false),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of contracts", "ContratoPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Find contract by ID",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Contract UUID")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Contract", "Contrato"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create contract",
		Description: "New contracts always start in Aguardando Geração; a status in the body is ignored",
		RequestBody: openapi.RequestBodyJSON("CreateContratoCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Contract created", "Contrato"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update contract",
		Description: "Once a contract leaves Aguardando Geração only its status may change",
		Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Contract UUID")},
		RequestBody: openapi.RequestBodyJSON("UpdateContratoCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Contract updated", "Contrato"),
			400: openapi.ResponseRef("BadRequest"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete contract",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "Contract UUID")},
		Responses: map[int]*openapi.Response{
			204: {Description: "Contract deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func statusSchema() *openapi.Schema {
	enum := make([]string, len(Statuses))
	for i, s := range Statuses {
		enum[i] = string(s)
	}
	return &openapi.Schema{Type: "string", Enum: enum}
}

func commercialFields() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"cliente_id":               {Type: "string", Format: "uuid"},
		"projeto_id":               {Type: "string", Format: "uuid"},
		"valor_mensalidade":        {Type: "string", Pattern: `^\d+(\.\d{1,2})?$`, Example: "1500.00"},
		"valor_setup":              {Type: "string", Pattern: `^\d+(\.\d{1,2})?$`, Example: "3000"},
		"plano_nome":               {Type: "string", Example: "Plano Pro"},
		"prazo_implementacao_dias": {Type: []string{"integer", "null"}, Description: "Positive number of days"},
		"provedor_openai":          openapi.Nullable("string"),
		"forma_pagamento":          openapi.Nullable("string"),
		"observacoes_ia":           openapi.Nullable("string"),
		"assinante_venda_nome":     openapi.Nullable("string"),
		"assinante_venda_email":    {Type: []string{"string", "null"}, Format: "email"},
	}
}

func integrationFields() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"url_contrato_gerado":    openapi.Nullable("string"),
		"clicksign_document_key": openapi.Nullable("string"),
		"asaas_subscription_id":  openapi.Nullable("string"),
		"asaas_setup_payment_id": openapi.Nullable("string"),
	}
}

// Schemas returns the contract domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	contrato := commercialFields()
	maps.Copy(contrato, integrationFields())
	contrato["id"] = &openapi.Schema{Type: "string", Format: "uuid"}
	contrato["status"] = statusSchema()
	contrato["created_at"] = &openapi.Schema{Type: "string", Format: "date-time"}
	contrato["cliente"] = &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "string", Format: "uuid"},
			"razao_social": {Type: "string"},
			"cnpj":         {Type: "string"},
		},
	}
	contrato["projeto"] = &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":           {Type: "string", Format: "uuid"},
			"nome_projeto": {Type: "string"},
		},
	}

	update := commercialFields()
	maps.Copy(update, integrationFields())
	update["status"] = statusSchema()

	return map[string]*openapi.Schema{
		"Contrato":           {Type: "object", Properties: contrato},
		"ContratoPageResult": openapi.PageResult("Contrato"),
		"CreateContratoCommand": {
			Type:       "object",
			Required:   []string{"cliente_id", "projeto_id", "valor_mensalidade", "valor_setup", "plano_nome"},
			Properties: commercialFields(),
		},
		"UpdateContratoCommand": {Type: "object", Properties: update},
		"ContratoStatus":        statusSchema(),
	}
}
