package contratos

import (
	"github.com/JaimeStill/contratos/pkg/repository"
	"github.com/google/uuid"
)

func scanFields(c *Contrato) []any {
	return []any{
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
	}
}

// scanRow reads the contract columns only, as returned by writes.
func scanRow(s repository.Scanner) (Contrato, error) {
	var c Contrato
	err := s.Scan(scanFields(&c)...)
	return c, err
}

// scanContrato reads a contract with its joined client and project summaries.
func scanContrato(s repository.Scanner) (Contrato, error) {
	var (
		c           Contrato
		clienteID   *uuid.UUID
		razaoSocial *string
		cnpj        *string
		projetoID   *uuid.UUID
		nomeProjeto *string
	)

	dest := append(scanFields(&c), &clienteID, &razaoSocial, &cnpj, &projetoID, &nomeProjeto)
	if err := s.Scan(dest...); err != nil {
		return c, err
	}

	if clienteID != nil && razaoSocial != nil && cnpj != nil {
		c.Cliente = &ClienteResumo{ID: *clienteID, RazaoSocial: *razaoSocial, CNPJ: *cnpj}
	}
	if projetoID != nil && nomeProjeto != nil {
		c.Projeto = &ProjetoResumo{ID: *projetoID, NomeProjeto: *nomeProjeto}
	}
	return c, nil
}
