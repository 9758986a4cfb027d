package contratos

import "github.com/JaimeStill/contratos/pkg/query"

var projection = query.NewProjectionMap("public", "contratos", "ct").
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
	LeftJoin("public", "clientes", "cl", "cl.id = ct.cliente_id").
	ProjectFrom("cl", "id", "ClienteResumoID").
	ProjectFrom("cl", "razao_social", "ClienteRazaoSocial").
	ProjectFrom("cl", "cnpj", "ClienteCNPJ").
	LeftJoin("public", "projetos", "p", "p.id = ct.projeto_id").
	ProjectFrom("p", "id", "ProjetoResumoID").
	ProjectFrom("p", "nome_projeto", "ProjetoNome")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

// columns lists the contract columns for INSERT/UPDATE ... RETURNING,
// in projection order without the joined summaries.
var columns = []string{
	"id",
	"cliente_id",
	"projeto_id",
	"url_contrato_gerado",
	"clicksign_document_key",
	"asaas_subscription_id",
	"asaas_setup_payment_id",
	"valor_mensalidade::text",
	"valor_setup::text",
	"plano_nome",
	"prazo_implementacao_dias",
	"provedor_openai",
	"forma_pagamento",
	"observacoes_ia",
	"assinante_venda_nome",
	"assinante_venda_email",
	"status",
	"created_at",
}
