package projetos

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

// NewStore creates a PostgreSQL-backed project store.
func NewStore(db *sql.DB) Store {
	return &repo{db: db}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Projeto], error) {
	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "NomeProjeto", "Descricao")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count projetos: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanProjeto)
	if err != nil {
		return nil, fmt.Errorf("query projetos: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Projeto, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	p, err := repository.QueryOne(ctx, r.db, q, args, scanProjeto)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Insert(ctx context.Context, cmd CreateCommand, tpl *Template) (*Projeto, error) {
	q := `INSERT INTO public.projetos(nome_projeto, descricao, template_pdf_path, template_html)
		VALUES($1, $2, $3, $4)
		RETURNING ` + strings.Join(columns, ", ")

	var pdfPath, html *string
	if tpl != nil {
		pdfPath, html = &tpl.PDFPath, &tpl.HTML
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Projeto, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.NomeProjeto, cmd.Descricao, pdfPath, html}, scanProjeto)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, tpl *Template) (*Projeto, error) {
	patch := repository.Patch{}
	repository.SetIfPresent(patch, "nome_projeto", cmd.NomeProjeto)
	repository.SetIfPresent(patch, "descricao", cmd.Descricao)
	if tpl != nil {
		patch.
			Set("template_pdf_path", tpl.PDFPath).
			Set("template_html", tpl.HTML)
	}

	q, args, err := repository.PatchSQL("public", "projetos", id, patch, columns)
	if errors.Is(err, repository.ErrEmptyPatch) {
		return r.Find(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	p, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Projeto, error) {
		return repository.QueryOne(ctx, tx, q, args, scanProjeto)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM public.projetos WHERE id = $1`
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
		`SELECT 1 FROM public.contratos WHERE projeto_id = $1 LIMIT 1`, id)
}
