package clientes

import (
	"context"
	"database/sql"
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

// NewStore creates a PostgreSQL-backed client store.
func NewStore(db *sql.DB) Store {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Cliente], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "RazaoSocial", "CNPJ")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count clientes: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCliente)
	if err != nil {
		return nil, fmt.Errorf("query clientes: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Cliente, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCliente)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) CNPJExists(ctx context.Context, cnpj string, exclude *uuid.UUID) (bool, error) {
	if exclude != nil {
		return repository.Exists(ctx, r.db,
			`SELECT 1 FROM public.clientes WHERE cnpj = $1 AND id <> $2 LIMIT 1`, cnpj, *exclude)
	}
	return repository.Exists(ctx, r.db,
		`SELECT 1 FROM public.clientes WHERE cnpj = $1 LIMIT 1`, cnpj)
}

func (r *repo) Insert(ctx context.Context, cmd CreateCommand) (*Cliente, error) {
	q := `INSERT INTO public.clientes(
			razao_social, cnpj, endereco_completo, cidade_estado, assinante_nome,
			assinante_email, financeiro_nome, financeiro_email, financeiro_telefone)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + strings.Join(columns, ", ")

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Cliente, error) {
		return repository.QueryOne(ctx, tx, q, fullArgs(cmd), scanCliente)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Cliente, error) {
	patch := repository.Patch{}
	repository.SetIfPresent(patch, "razao_social", cmd.RazaoSocial)
	repository.SetIfPresent(patch, "cnpj", cmd.CNPJ)
	repository.SetIfPresent(patch, "endereco_completo", cmd.EnderecoCompleto)
	repository.SetIfPresent(patch, "cidade_estado", cmd.CidadeEstado)
	repository.SetIfPresent(patch, "assinante_nome", cmd.AssinanteNome)
	repository.SetIfPresent(patch, "assinante_email", cmd.AssinanteEmail)
	repository.SetIfPresent(patch, "financeiro_nome", cmd.FinanceiroNome)
	repository.SetIfPresent(patch, "financeiro_email", cmd.FinanceiroEmail)
	repository.SetIfPresent(patch, "financeiro_telefone", cmd.FinanceiroTelefone)

	q, args, err := repository.PatchSQL("public", "clientes", id, patch, columns)
	if err != nil {
		return nil, err
	}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Cliente, error) {
		return repository.QueryOne(ctx, tx, q, args, scanCliente)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrCNPJTaken)
	}
	return &c, nil
}

func (r *repo) Replace(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Cliente, error) {
	q := `UPDATE public.clientes SET
			razao_social = $1, cnpj = $2, endereco_completo = $3, cidade_estado = $4,
			assinante_nome = $5, assinante_email = $6, financeiro_nome = $7,
			financeiro_email = $8, financeiro_telefone = $9
		WHERE id = $10
		RETURNING ` + strings.Join(columns, ", ")

	args := append(fullArgs(cmd), id)

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Cliente, error) {
		return repository.QueryOne(ctx, tx, q, args, scanCliente)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrCNPJTaken)
	}
	return &c, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM public.clientes WHERE id = $1`
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})
	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return nil
}

func (r *repo) HasContratos(ctx context.Context, id uuid.UUID) (bool, error) {
	return repository.Exists(ctx, r.db,
		`SELECT 1 FROM public.contratos WHERE cliente_id = $1 LIMIT 1`, id)
}

func (r *repo) Contratos(ctx context.Context, id uuid.UUID) ([]Contrato, error) {
	q, args := query.
		NewBuilder(contratoProjection, defaultSort).
		WhereEquals("ClienteID", id).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanContrato)
	if err != nil {
		return nil, fmt.Errorf("query contratos: %w", err)
	}
	return items, nil
}

func fullArgs(cmd CreateCommand) []any {
	return []any{
		cmd.RazaoSocial,
		cmd.CNPJ,
		cmd.EnderecoCompleto,
		cmd.CidadeEstado,
		cmd.AssinanteNome,
		cmd.AssinanteEmail,
		cmd.FinanceiroNome,
		cmd.FinanceiroEmail,
		cmd.FinanceiroTelefone,
	}
}
