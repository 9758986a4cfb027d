package api

import (
	"github.com/JaimeStill/contratos/internal/clientes"
	"github.com/JaimeStill/contratos/internal/contratos"
	"github.com/JaimeStill/contratos/internal/projetos"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Clientes  clientes.System
	Projetos  projetos.System
	Contratos contratos.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Clientes: clientes.New(
			clientes.NewStore(db),
			runtime.Logger,
			runtime.Pagination,
		),
		Projetos: projetos.New(
			projetos.NewStore(db),
			runtime.Storage,
			runtime.Extractor,
			runtime.Logger,
			runtime.Pagination,
			runtime.MaxUploadSize,
		),
		Contratos: contratos.New(
			contratos.NewStore(db),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
