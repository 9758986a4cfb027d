package projetos

import "github.com/JaimeStill/contratos/pkg/apperr"

// Domain errors for project operations.
var (
	ErrNotFound     = apperr.New(apperr.NotFound, "Projeto não encontrado")
	ErrDuplicate    = apperr.New(apperr.Conflict, "Projeto já cadastrado")
	ErrHasContratos = apperr.New(apperr.Conflict, "Não é possível excluir projeto com contratos associados")
	ErrNotPDF       = apperr.New(apperr.InvalidInput, "Apenas arquivos PDF são permitidos")
	ErrFileTooLarge = apperr.New(apperr.InvalidInput, "Arquivo muito grande. Máximo 10MB")
	ErrEmptyFile    = apperr.New(apperr.InvalidInput, "Arquivo PDF vazio")
)
