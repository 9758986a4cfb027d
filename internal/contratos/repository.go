package contratos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/JaimeStill/contratos/pkg/query"
	"github.com/JaimeStill/contratos/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db *sql.DB
}

// NewStore creates a PostgreSQL-backed contract store.
func NewStore(db *sql.DB) Store {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Contrato], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "PlanoNome", "ClienteRazaoSocial", "ProjetoNome")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count contratos: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanContrato)
	if err != nil {
		return nil, fmt.Errorf("query contratos: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Contrato, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContrato)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Insert(ctx context.Context, cmd CreateCommand, status Status) (*Contrato, error) {
	q := `INSERT INTO public.contratos(
			cliente_id, projeto_id, valor_mensalidade, valor_setup, plano_nome,
			prazo_implementacao_dias, provedor_openai, forma_pagamento, observacoes_ia,
			assinante_venda_nome, assinante_venda_email, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + strings.Join(columns, ", ")

	args := []any{
		cmd.ClienteID,
		cmd.ProjetoID,
		cmd.ValorMensalidade,
		cmd.ValorSetup,
		cmd.PlanoNome,
		cmd.PrazoImplementacaoDias,
		cmd.ProvedorOpenAI,
		cmd.FormaPagamento,
		cmd.ObservacoesIA,
		cmd.AssinanteVendaNome,
		cmd.AssinanteVendaEmail,
		string(status),
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Contrato, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRow)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Contrato, error) {
	patch := repository.Patch{}
	repository.SetIfPresent(patch, "cliente_id", cmd.ClienteID)
	repository.SetIfPresent(patch, "projeto_id", cmd.ProjetoID)
	repository.SetIfPresent(patch, "valor_mensalidade", cmd.ValorMensalidade)
	repository.SetIfPresent(patch, "valor_setup", cmd.ValorSetup)
	repository.SetIfPresent(patch, "plano_nome", cmd.PlanoNome)
	repository.SetIfPresent(patch, "prazo_implementacao_dias", cmd.PrazoImplementacaoDias)
	repository.SetIfPresent(patch, "provedor_openai", cmd.ProvedorOpenAI)
	repository.SetIfPresent(patch, "forma_pagamento", cmd.FormaPagamento)
	repository.SetIfPresent(patch, "observacoes_ia", cmd.ObservacoesIA)
	repository.SetIfPresent(patch, "assinante_venda_nome", cmd.AssinanteVendaNome)
	repository.SetIfPresent(patch, "assinante_venda_email", cmd.AssinanteVendaEmail)
	repository.SetIfPresent(patch, "url_contrato_gerado", cmd.URLContratoGerado)
	repository.SetIfPresent(patch, "clicksign_document_key", cmd.ClicksignDocumentKey)
	repository.SetIfPresent(patch, "asaas_subscription_id", cmd.AsaasSubscriptionID)
	repository.SetIfPresent(patch, "asaas_setup_payment_id", cmd.AsaasSetupPaymentID)
	if cmd.Status != nil {
		patch.Set("status", string(*cmd.Status))
	}

	q, args, err := repository.PatchSQL("public", "contratos", id, patch, columns)
	if errors.Is(err, repository.ErrEmptyPatch) {
		return r.Find(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Contrato, error) {
		return repository.QueryOne(ctx, tx, q, args, scanRow)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM public.contratos WHERE id = $1`
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) ClienteExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return repository.Exists(ctx, r.db,
		`SELECT 1 FROM public.clientes WHERE id = $1 LIMIT 1`, id)
}

func (r *repo) ProjetoExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return repository.Exists(ctx, r.db,
		`SELECT 1 FROM public.projetos WHERE id = $1 LIMIT 1`, id)
}
