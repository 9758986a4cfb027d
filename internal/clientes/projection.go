package clientes

import "github.com/JaimeStill/contratos/pkg/query"

var projection = query.NewProjectionMap("public", "clientes", "c").
	Project("id", "ID").
	Project("asaas_customer_id", "AsaasCustomerID").
	Project("razao_social", "RazaoSocial").
	Project("cnpj", "CNPJ").
	Project("endereco_completo", "EnderecoCompleto").
	Project("cidade_estado", "CidadeEstado").
	Project("assinante_nome", "AssinanteNome").
	Project("assinante_email", "AssinanteEmail").
	Project("financeiro_nome", "FinanceiroNome").
	Project("financeiro_email", "FinanceiroEmail").
	Project("financeiro_telefone", "FinanceiroTelefone").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// columns matches the projection order for INSERT/UPDATE ... RETURNING.
var columns = []string{
	"id",
	"asaas_customer_id",
	"razao_social",
	"cnpj",
	"endereco_completo",
	"cidade_estado",
	"assinante_nome",
	"assinante_email",
	"financeiro_nome",
	"financeiro_email",
	"financeiro_telefone",
	"created_at",
}

// contratoProjection reads full contract rows for the client detail view.
var contratoProjection = query.NewProjectionMap("public", "contratos", "ct").
	Project("id", "ID").
	Project("cliente_id", "ClienteID").
	Project("projeto_id", "ProjetoID").
	Project("url_contrato_gerado", "URLContratoGerado").
	Project("clicksign_document_key", "ClicksignDocumentKey").
	Project("asaas_subscription_id", "AsaasSubscriptionID").
	Project("asaas_setup_payment_id", "AsaasSetupPaymentID").
	Project("valor_mensalidade::text", "ValorMensalidade").
	Project("valor_setup::text", "ValorSetup").
	Project("plano_nome", "PlanoNome").
	Project("prazo_implementacao_dias", "PrazoImplementacaoDias").
	Project("provedor_openai", "ProvedorOpenAI").
	Project("forma_pagamento", "FormaPagamento").
	Project("observacoes_ia", "ObservacoesIA").
	Project("assinante_venda_nome", "AssinanteVendaNome").
	Project("assinante_venda_email", "AssinanteVendaEmail").
	Project("status", "Status").
	Project("created_at", "CreatedAt").
	LeftJoin("public", "projetos", "p", "p.id = ct.projeto_id").
	ProjectFrom("p", "id", "ProjetoResumoID").
	ProjectFrom("p", "nome_projeto", "ProjetoNome")
