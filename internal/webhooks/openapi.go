package webhooks

import "github.com/JaimeStill/contratos/pkg/openapi"

type spec struct {
	Status   *openapi.Operation
	Callback *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the webhook endpoints.
var Spec = spec{
	Status: &openapi.Operation{
		Summary: "Webhook liveness",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Receiver online", "WebhookStatus"),
		},
	},
	Callback: &openapi.Operation{
		Summary: "Generation workflow callback",
		Description: "Always acknowledged. When contrato_id and status are present the status and " +
			"integration keys are recorded on the contract, including contracts past Aguardando Geração",
		RequestBody: openapi.RequestBodyJSON("WebhookCallback", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Callback received", "WebhookCallbackResponse"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the webhook schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"WebhookStatus": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":    {Type: "string", Example: "online"},
				"timestamp": {Type: "string", Format: "date-time"},
			},
		},
		"WebhookCallback": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"contrato_id": {Type: []string{"string", "null"}, Format: "uuid"},
				"status":      openapi.SchemaRef("ContratoStatus"),
				"data": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"url_contrato_gerado":    openapi.Nullable("string"),
						"clicksign_document_key": openapi.Nullable("string"),
						"asaas_subscription_id":  openapi.Nullable("string"),
						"asaas_setup_payment_id": openapi.Nullable("string"),
					},
				},
			},
		},
		"WebhookCallbackResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"received":    {Type: "boolean"},
				"contrato_id": {Type: []string{"string", "null"}, Format: "uuid"},
				"status":      openapi.Nullable("string"),
				"contrato":    openapi.SchemaRef("Contrato"),
			},
		},
	}
}
