package clientes

import "github.com/JaimeStill/contratos/pkg/apperr"

// Domain errors for client operations.
var (
	ErrNotFound     = apperr.New(apperr.NotFound, "Cliente não encontrado")
	ErrDuplicate    = apperr.New(apperr.Conflict, "CNPJ já cadastrado")
	ErrCNPJTaken    = apperr.New(apperr.Conflict, "CNPJ já cadastrado para outro cliente")
	ErrHasContratos = apperr.New(apperr.Conflict, "Não é possível excluir cliente com contratos associados")
)
