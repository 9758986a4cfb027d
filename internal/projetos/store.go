package projetos

import (
	"context"

	"github.com/JaimeStill/contratos/pkg/pagination"
	"github.com/google/uuid"
)

// Store persists projects. A nil template leaves the template columns
// untouched on Update and null on Insert.
type Store interface {
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Projeto], error)
	Find(ctx context.Context, id uuid.UUID) (*Projeto, error)
	Insert(ctx context.Context, cmd CreateCommand, tpl *Template) (*Projeto, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand, tpl *Template) (*Projeto, error)
	Delete(ctx context.Context, id uuid.UUID) error
	HasContratos(ctx context.Context, id uuid.UUID) (bool, error)
}
