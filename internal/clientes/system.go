package clientes

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JaimeStill/contratos/internal/cnpj"
	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the client management operations.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Cliente], error)
	Find(ctx context.Context, id uuid.UUID) (*Detail, error)
	Create(ctx context.Context, cmd CreateCommand) (*Cliente, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Cliente, error)
	Replace(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Cliente, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Contratos(ctx context.Context, id uuid.UUID) ([]Contrato, error)
}

type system struct {
	store      Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the client manager over store.
func New(store Store, logger *slog.Logger, pagination pagination.Config) System {
	return &system{
		store:      store,
		logger:     logger.With("system", "clientes"),
		pagination: pagination,
	}
}

func (s *system) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Cliente], error) {
	page.Normalize(s.pagination)

	result, err := s.store.List(ctx, page, filters)
	if err != nil {
		return nil, s.internal("Erro ao buscar clientes", err)
	}
	return result, nil
}

func (s *system) Find(ctx context.Context, id uuid.UUID) (*Detail, error) {
	c, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao buscar cliente", err)
	}

	contratos, err := s.store.Contratos(ctx, id)
	if err != nil {
		return nil, s.internal("Erro ao buscar contratos", err)
	}

	return &Detail{Cliente: *c, Contratos: contratos}, nil
}

func (s *system) Create(ctx context.Context, cmd CreateCommand) (*Cliente, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	cmd.CNPJ = cnpj.Normalize(cmd.CNPJ)

	exists, err := s.store.CNPJExists(ctx, cmd.CNPJ, nil)
	if err != nil {
		return nil, s.internal("Erro ao criar cliente", err)
	}
	if exists {
		return nil, ErrDuplicate
	}

	c, err := s.store.Insert(ctx, cmd)
	if err != nil {
		return nil, s.fail("Erro ao criar cliente", err)
	}

	s.logger.Info("cliente created", "id", c.ID, "cnpj", c.CNPJ)
	return c, nil
}

func (s *system) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Cliente, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao atualizar cliente", err)
	}

	if cmd.CNPJ != nil {
		normalized := cnpj.Normalize(*cmd.CNPJ)
		cmd.CNPJ = &normalized

		taken, err := s.store.CNPJExists(ctx, normalized, &id)
		if err != nil {
			return nil, s.internal("Erro ao atualizar cliente", err)
		}
		if taken {
			return nil, ErrCNPJTaken
		}
	}

	if cmd.Empty() {
		return existing, nil
	}

	c, err := s.store.Update(ctx, id, cmd)
	if err != nil {
		return nil, s.fail("Erro ao atualizar cliente", err)
	}

	s.logger.Info("cliente updated", "id", c.ID)
	return c, nil
}

func (s *system) Replace(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Cliente, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}
	cmd.CNPJ = cnpj.Normalize(cmd.CNPJ)

	if _, err := s.store.Find(ctx, id); err != nil {
		return nil, s.fail("Erro ao substituir cliente", err)
	}

	taken, err := s.store.CNPJExists(ctx, cmd.CNPJ, &id)
	if err != nil {
		return nil, s.internal("Erro ao substituir cliente", err)
	}
	if taken {
		return nil, ErrCNPJTaken
	}

	c, err := s.store.Replace(ctx, id, cmd)
	if err != nil {
		return nil, s.fail("Erro ao substituir cliente", err)
	}

	s.logger.Info("cliente replaced", "id", c.ID)
	return c, nil
}

func (s *system) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)
	has, err := s.store.HasContratos(ctx, id)
	if err != nil {
		return s.internal("Erro ao deletar cliente", err)
	}
	if has {
		return ErrHasContratos
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail("Erro ao deletar cliente", err)
	}

	s.logger.Info("cliente deleted", "id", id)
	return nil
}

func (s *system) Contratos(ctx context.Context, id uuid.UUID) ([]Contrato, error) {
	items, err := s.store.Contratos(ctx, id)
	if err != nil {
		return nil, s.internal("Erro ao buscar contratos", err)
	}
	return items, nil
}

// fail passes domain errors through and wraps anything else as internal.
func (s *system) fail(msg string, err error) error {
	var tagged *apperr.Error
	if errors.As(err, &tagged) {
		return err
	}
	return s.internal(msg, err)
}

func (s *system) internal(msg string, err error) error {
	s.logger.Error(msg, "error", err)
	return apperr.Wrap(apperr.Internal, msg, err)
}
