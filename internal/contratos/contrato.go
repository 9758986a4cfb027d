// Package contratos manages contracts between clients and template
// projects, including the status lifecycle and the edit-lock rule.
package contratos

import (
	"time"

	"github.com/google/uuid"
)

// Contrato is a commercial agreement for a client on a template project.
// The integration keys are written by downstream systems and never interpreted.
type Contrato struct {
	ID                     uuid.UUID      `json:"id"`
	ClienteID              uuid.UUID      `json:"cliente_id"`
	ProjetoID              uuid.UUID      `json:"projeto_id"`
	URLContratoGerado      *string        `json:"url_contrato_gerado"`
	ClicksignDocumentKey   *string        `json:"clicksign_document_key"`
	AsaasSubscriptionID    *string        `json:"asaas_subscription_id"`
	AsaasSetupPaymentID    *string        `json:"asaas_setup_payment_id"`
	ValorMensalidade       string         `json:"valor_mensalidade"`
	ValorSetup             string         `json:"valor_setup"`
	PlanoNome              string         `json:"plano_nome"`
	PrazoImplementacaoDias *int           `json:"prazo_implementacao_dias"`
	ProvedorOpenAI         *string        `json:"provedor_openai"`
	FormaPagamento         *string        `json:"forma_pagamento"`
	ObservacoesIA          *string        `json:"observacoes_ia"`
	AssinanteVendaNome     *string        `json:"assinante_venda_nome"`
	AssinanteVendaEmail    *string        `json:"assinante_venda_email"`
	Status                 Status         `json:"status"`
	CreatedAt              time.Time      `json:"created_at"`
	Cliente                *ClienteResumo `json:"cliente,omitempty"`
	Projeto                *ProjetoResumo `json:"projeto,omitempty"`
}

// ClienteResumo is the client summary joined into contract reads.
type ClienteResumo struct {
	ID          uuid.UUID `json:"id"`
	RazaoSocial string    `json:"razao_social"`
	CNPJ        string    `json:"cnpj"`
}

// ProjetoResumo is the project summary joined into contract reads.
type ProjetoResumo struct {
	ID          uuid.UUID `json:"id"`
	NomeProjeto string    `json:"nome_projeto"`
}

// CreateCommand carries the fields of a new contract. There is no status
// field: new contracts always start in AguardandoGeracao.
type CreateCommand struct {
	ClienteID              uuid.UUID `json:"cliente_id"`
	ProjetoID              uuid.UUID `json:"projeto_id"`
	ValorMensalidade       string    `json:"valor_mensalidade"`
	ValorSetup             string    `json:"valor_setup"`
	PlanoNome              string    `json:"plano_nome"`
	PrazoImplementacaoDias *int      `json:"prazo_implementacao_dias"`
	ProvedorOpenAI         *string   `json:"provedor_openai"`
	FormaPagamento         *string   `json:"forma_pagamento"`
	ObservacoesIA          *string   `json:"observacoes_ia"`
	AssinanteVendaNome     *string   `json:"assinante_venda_nome"`
	AssinanteVendaEmail    *string   `json:"assinante_venda_email"`
}

// UpdateCommand is a partial update; nil fields are left untouched.
type UpdateCommand struct {
	ClienteID              *uuid.UUID `json:"cliente_id"`
	ProjetoID              *uuid.UUID `json:"projeto_id"`
	ValorMensalidade       *string    `json:"valor_mensalidade"`
	ValorSetup             *string    `json:"valor_setup"`
	PlanoNome              *string    `json:"plano_nome"`
	PrazoImplementacaoDias *int       `json:"prazo_implementacao_dias"`
	ProvedorOpenAI         *string    `json:"provedor_openai"`
	FormaPagamento         *string    `json:"forma_pagamento"`
	ObservacoesIA          *string    `json:"observacoes_ia"`
	AssinanteVendaNome     *string    `json:"assinante_venda_nome"`
	AssinanteVendaEmail    *string    `json:"assinante_venda_email"`
	URLContratoGerado      *string    `json:"url_contrato_gerado"`
	ClicksignDocumentKey   *string    `json:"clicksign_document_key"`
	AsaasSubscriptionID    *string    `json:"asaas_subscription_id"`
	AsaasSetupPaymentID    *string    `json:"asaas_setup_payment_id"`
	Status                 *Status    `json:"status"`
}

// HasNonStatusFields reports whether the patch touches anything besides status.
func (c UpdateCommand) HasNonStatusFields() bool {
	c.Status = nil
	return c != UpdateCommand{}
}

// Empty reports whether the patch sets no field.
func (c UpdateCommand) Empty() bool {
	return c == UpdateCommand{}
}

// CallbackCommand is the system-path write made when the generation
// pipeline reports back. Nil keys are left untouched.
type CallbackCommand struct {
	Status               Status
	URLContratoGerado    *string
	ClicksignDocumentKey *string
	AsaasSubscriptionID  *string
	AsaasSetupPaymentID  *string
}

func (c CallbackCommand) patch() UpdateCommand {
	status := c.Status
	return UpdateCommand{
		Status:               &status,
		URLContratoGerado:    c.URLContratoGerado,
		ClicksignDocumentKey: c.ClicksignDocumentKey,
		AsaasSubscriptionID:  c.AsaasSubscriptionID,
		AsaasSetupPaymentID:  c.AsaasSetupPaymentID,
	}
}
