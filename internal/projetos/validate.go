package projetos

import (
	"strings"

	"github.com/JaimeStill/contratos/pkg/apperr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	minNomeLength      = 3
	maxDescricaoLength = 1000
	pdfContentType     = "application/pdf"
)

func (c *CreateCommand) normalize() {
	c.NomeProjeto = strings.TrimSpace(c.NomeProjeto)
	c.Descricao = trimPtr(c.Descricao)
}

func (c *CreateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.NomeProjeto,
			validation.Required.Error("Nome do projeto é obrigatório"),
			validation.Length(minNomeLength, 0).Error("Nome do projeto deve ter pelo menos 3 caracteres"),
		),
		validation.Field(&c.Descricao,
			validation.Length(0, maxDescricaoLength).Error("Descrição deve ter no máximo 1000 caracteres"),
		),
	))
}

func (c *UpdateCommand) normalize() {
	c.NomeProjeto = trimPtr(c.NomeProjeto)
	c.Descricao = trimPtr(c.Descricao)
}

func (c *UpdateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.NomeProjeto, validation.When(c.NomeProjeto != nil,
			validation.Required.Error("Nome do projeto deve ter pelo menos 3 caracteres"),
			validation.Length(minNomeLength, 0).Error("Nome do projeto deve ter pelo menos 3 caracteres"),
		)),
		validation.Field(&c.Descricao,
			validation.Length(0, maxDescricaoLength).Error("Descrição deve ter no máximo 1000 caracteres"),
		),
	))
}

func checkFile(f *File, maxSize int64) error {
	if f.ContentType != pdfContentType {
		return ErrNotPDF
	}
	if int64(len(f.Data)) > maxSize {
		return ErrFileTooLarge
	}
	if len(f.Data) == 0 {
		return ErrEmptyFile
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
