package contratos

import "github.com/JaimeStill/contratos/pkg/apperr"

// Domain errors for contract operations.
var (
	ErrNotFound        = apperr.New(apperr.NotFound, "Contrato não encontrado")
	ErrClienteNotFound = apperr.New(apperr.NotFound, "Cliente não encontrado")
	ErrProjetoNotFound = apperr.New(apperr.NotFound, "Projeto não encontrado")
	ErrLocked          = apperr.New(apperr.Forbidden, `Contrato só pode ser editado quando estiver com status "Aguardando Geração"`)
	ErrInvalidStatus   = apperr.New(apperr.InvalidInput, "Status inválido")
	ErrDuplicate       = apperr.New(apperr.Conflict, "Contrato já cadastrado")
)
