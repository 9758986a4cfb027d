package contratos

import (
	"context"

	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

// Store persists contracts and answers the referential checks the
// manager needs before writing.
type Store interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Contrato], error)
	Find(ctx context.Context, id uuid.UUID) (*Contrato, error)
	Insert(ctx context.Context, cmd CreateCommand, status Status) (*Contrato, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Contrato, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ClienteExists(ctx context.Context, id uuid.UUID) (bool, error)
	ProjetoExists(ctx context.Context, id uuid.UUID) (bool, error)
}
