// Package clientes manages client records: CNPJ normalization and uniqueness,
// full and partial updates, and the delete guard against existing contracts.
package clientes

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a client company. CNPJ is always stored digits-only.
type Cliente struct {
	ID                 uuid.UUID `json:"id"`
	AsaasCustomerID    *string   `json:"asaas_customer_id"`
	RazaoSocial        string    `json:"razao_social"`
	CNPJ               string    `json:"cnpj"`
	EnderecoCompleto   *string   `json:"endereco_completo"`
	CidadeEstado       *string   `json:"cidade_estado"`
	AssinanteNome      *string   `json:"assinante_nome"`
	AssinanteEmail     *string   `json:"assinante_email"`
	FinanceiroNome     *string   `json:"financeiro_nome"`
	FinanceiroEmail    *string   `json:"financeiro_email"`
	FinanceiroTelefone *string   `json:"financeiro_telefone"`
	CreatedAt          time.Time `json:"created_at"`
}

// Detail is a client together with a summary of its contracts.
type Detail struct {
	Cliente
	Contratos []Contrato `json:"contratos"`
}

// Contrato is a full contract row belonging to a client, with its
// project summary.
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
	Status                 string         `json:"status"`
	CreatedAt              time.Time      `json:"created_at"`
	Projeto                *ProjetoResumo `json:"projeto,omitempty"`
}

// ProjetoResumo is the project display summary joined into client contracts.
type ProjetoResumo struct {
	ID          uuid.UUID `json:"id"`
	NomeProjeto string    `json:"nome_projeto"`
}

// CreateCommand carries every client field. It is also the payload of a full replace.
type CreateCommand struct {
	RazaoSocial        string  `json:"razao_social"`
	CNPJ               string  `json:"cnpj"`
	EnderecoCompleto   *string `json:"endereco_completo"`
	CidadeEstado       *string `json:"cidade_estado"`
	AssinanteNome      *string `json:"assinante_nome"`
	AssinanteEmail     *string `json:"assinante_email"`
	FinanceiroNome     *string `json:"financeiro_nome"`
	FinanceiroEmail    *string `json:"financeiro_email"`
	FinanceiroTelefone *string `json:"financeiro_telefone"`
}

// UpdateCommand is a partial update; nil fields are left untouched.
type UpdateCommand struct {
	RazaoSocial        *string `json:"razao_social"`
	CNPJ               *string `json:"cnpj"`
	EnderecoCompleto   *string `json:"endereco_completo"`
	CidadeEstado       *string `json:"cidade_estado"`
	AssinanteNome      *string `json:"assinante_nome"`
	AssinanteEmail     *string `json:"assinante_email"`
	FinanceiroNome     *string `json:"financeiro_nome"`
	FinanceiroEmail    *string `json:"financeiro_email"`
	FinanceiroTelefone *string `json:"financeiro_telefone"`
}

// Empty reports whether the patch sets no field.
func (c UpdateCommand) Empty() bool {
	return c == UpdateCommand{}
}
