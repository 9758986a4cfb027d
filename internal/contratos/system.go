package contratos

import (
	"context"
	"errors"
	"log/slog"

	"github.com/JaimeStill/contratos/pkg/apperr"
	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

// System defines the contract operations. Writes ignore cancellation of ctx.
type System interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Contrato], error)
	Find(ctx context.Context, id uuid.UUID) (*Contrato, error)
	Create(ctx context.Context, cmd CreateCommand) (*Contrato, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Contrato, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ApplyCallback(ctx context.Context, id uuid.UUID, cmd CallbackCommand) (*Contrato, error)
}

type system struct {
	store      Store
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates the contract manager over store.
func New(store Store, logger *slog.Logger, pagination pagination.Config) System {
	return &system{
		store:      store,
		logger:     logger.With("system", "contratos"),
		pagination: pagination,
	}
}

func (s *system) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Contrato], error) {
	page.Normalize(s.pagination)

	result, err := s.store.List(ctx, page, filters)
	if err != nil {
		return nil, s.internal("Erro ao buscar contratos", err)
	}
	return result, nil
}

func (s *system) Find(ctx context.Context, id uuid.UUID) (*Contrato, error) {
	c, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao buscar contrato", err)
	}
	return c, nil
}

func (s *system) Create(ctx context.Context, cmd CreateCommand) (*Contrato, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, &cmd.ClienteID, &cmd.ProjetoID); err != nil {
		return nil, err
	}

	c, err := s.store.Insert(ctx, cmd, AguardandoGeracao)
	if err != nil {
		return nil, s.fail("Erro ao criar contrato", err)
	}

	s.logger.Info("contrato created", "id", c.ID, "cliente_id", c.ClienteID, "projeto_id", c.ProjetoID)
	return c, nil
}

// Update applies a partial update. Once a contract leaves
// AguardandoGeracao only its status may change.
func (s *system) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Contrato, error) {
	ctx = context.WithoutCancel(ctx)
	cmd.normalize()
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao atualizar contrato", err)
	}

	if cmd.Status != nil && !cmd.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if !existing.Status.Editable() && cmd.HasNonStatusFields() {
		return nil, ErrLocked
	}

	if err := s.checkReferences(ctx, cmd.ClienteID, cmd.ProjetoID); err != nil {
		return nil, err
	}

	s.checkTransition(id, existing.Status, cmd.Status)

	if cmd.Empty() {
		return existing, nil
	}

	c, err := s.store.Update(ctx, id, cmd)
	if err != nil {
		return nil, s.fail("Erro ao atualizar contrato", err)
	}

	s.logger.Info("contrato updated", "id", id, "status", c.Status)
	return c, nil
}

// ApplyCallback records the outcome reported by the generation pipeline.
// It bypasses the edit-lock: only the status and integration keys change.
func (s *system) ApplyCallback(ctx context.Context, id uuid.UUID, cmd CallbackCommand) (*Contrato, error) {
	ctx = context.WithoutCancel(ctx)

	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, s.fail("Erro ao registrar callback", err)
	}

	if !cmd.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	s.checkTransition(id, existing.Status, &cmd.Status)

	c, err := s.store.Update(ctx, id, cmd.patch())
	if err != nil {
		return nil, s.fail("Erro ao registrar callback", err)
	}

	s.logger.Info("contrato callback applied", "id", id, "from", existing.Status, "status", c.Status)
	return c, nil
}

func (s *system) Delete(ctx context.Context, id uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)
	if err := s.store.Delete(ctx, id); err != nil {
		return s.fail("Erro ao deletar contrato", err)
	}

	s.logger.Info("contrato deleted", "id", id)
	return nil
}

func (s *system) checkTransition(id uuid.UUID, from Status, to *Status) {
	if to != nil && *to != from && !from.CanTransitionTo(*to) {
		s.logger.Warn("status change outside lifecycle graph", "id", id, "from", from, "to", *to)
	}
}

// checkReferences verifies that the referenced client and project exist.
// Nil ids are skipped.
func (s *system) checkReferences(ctx context.Context, clienteID, projetoID *uuid.UUID) error {
	if clienteID != nil {
		ok, err := s.store.ClienteExists(ctx, *clienteID)
		if err != nil {
			return s.internal("Erro ao verificar cliente", err)
		}
		if !ok {
			return ErrClienteNotFound
		}
	}

	if projetoID != nil {
		ok, err := s.store.ProjetoExists(ctx, *projetoID)
		if err != nil {
			return s.internal("Erro ao verificar projeto", err)
		}
		if !ok {
			return ErrProjetoNotFound
		}
	}

	return nil
}

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
