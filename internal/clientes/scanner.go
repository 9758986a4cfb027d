package clientes

import (
	"github.com/JaimeStill/contratos/pkg/repository"
	"github.com/google/uuid"
)

func scanCliente(s repository.Scanner) (Cliente, error) {
	var c Cliente
	err := s.Scan(
		&c.ID,
		&c.AsaasCustomerID,
		&c.RazaoSocial,
		&c.CNPJ,
		&c.EnderecoCompleto,
		&c.CidadeEstado,
		&c.AssinanteNome,
		&c.AssinanteEmail,
		&c.FinanceiroNome,
		&c.FinanceiroEmail,
		&c.FinanceiroTelefone,
		&c.CreatedAt,
	)
	return c, err
}

func scanContrato(s repository.Scanner) (Contrato, error) {
	var (
		c         Contrato
		projetoID *uuid.UUID
		nome      *string
	)
	err := s.Scan(
		&c.ID,
		&c.ClienteID,
		&c.ProjetoID,
		&c.URLContratoGerado,
		&c.ClicksignDocumentKey,
		&c.AsaasSubscriptionID,
		&c.AsaasSetupPaymentID,
		&c.ValorMensalidade,
		&c.ValorSetup,
		&c.PlanoNome,
		&c.PrazoImplementacaoDias,
		&c.ProvedorOpenAI,
		&c.FormaPagamento,
		&c.ObservacoesIA,
		&c.AssinanteVendaNome,
		&c.AssinanteVendaEmail,
		&c.Status,
		&c.CreatedAt,
		&projetoID,
		&nome,
	)
	if err != nil {
		return c, err
	}
	if projetoID != nil && nome != nil {
		c.Projeto = &ProjetoResumo{ID: *projetoID, NomeProjeto: *nome}
	}
	return c, nil
}
