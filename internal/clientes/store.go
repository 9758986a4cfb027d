package clientes

import (
	"context"

	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

// Store persists clients. Implementations return ErrNotFound for missing
// rows and ErrDuplicate when the CNPJ unique index rejects a write.
type Store interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Cliente], error)
	Find(ctx context.Context, id uuid.UUID) (*Cliente, error)

	// CNPJExists reports whether another client holds cnpj. A non-nil
	// exclude skips that client's own row.
	CNPJExists(ctx context.Context, cnpj string, exclude *uuid.UUID) (bool, error)

	Insert(ctx context.Context, cmd CreateCommand) (*Cliente, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Cliente, error)
	Replace(ctx context.Context, id uuid.UUID, cmd CreateCommand) (*Cliente, error)
	Delete(ctx context.Context, id uuid.UUID) error

	HasContratos(ctx context.Context, id uuid.UUID) (bool, error)
	Contratos(ctx context.Context, id uuid.UUID) ([]Contrato, error)
}
