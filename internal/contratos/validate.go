package contratos

import (
	"regexp"
	"strings"

	"github.com/JaimeStill/contratos/pkg/apperr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var valorPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// uuidSet rejects uuid.Nil. Required cannot see a zero UUID because the
// array type never reports empty.
func uuidSet(message string) validation.Rule {
	return validation.By(func(value any) error {
		switch v := value.(type) {
		case uuid.UUID:
			if v == uuid.Nil {
				return validation.NewError("validation_uuid", message)
			}
		case *uuid.UUID:
			if v != nil && *v == uuid.Nil {
				return validation.NewError("validation_uuid", message)
			}
		}
		return nil
	})
}

func (c *CreateCommand) normalize() {
	c.ValorMensalidade = strings.TrimSpace(c.ValorMensalidade)
	c.ValorSetup = strings.TrimSpace(c.ValorSetup)
	c.PlanoNome = strings.TrimSpace(c.PlanoNome)
	c.AssinanteVendaEmail = normalizeEmail(c.AssinanteVendaEmail)
}

func (c *CreateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.ClienteID, uuidSet("Cliente é obrigatório")),
		validation.Field(&c.ProjetoID, uuidSet("Projeto é obrigatório")),
		validation.Field(&c.ValorMensalidade,
			validation.Required.Error("Valor da mensalidade é obrigatório"),
			validation.Match(valorPattern).Error("Valor da mensalidade inválido"),
		),
		validation.Field(&c.ValorSetup,
			validation.Required.Error("Valor do setup é obrigatório"),
			validation.Match(valorPattern).Error("Valor do setup inválido"),
		),
		validation.Field(&c.PlanoNome,
			validation.Required.Error("Nome do plano é obrigatório"),
			validation.Length(3, 0).Error("Nome do plano deve ter pelo menos 3 caracteres"),
		),
		validation.Field(&c.PrazoImplementacaoDias,
			validation.Min(1).Error("Prazo de implementação deve ser um número positivo"),
		),
		validation.Field(&c.AssinanteVendaEmail, is.EmailFormat.Error("Email do assinante inválido")),
	))
}

func (c *UpdateCommand) normalize() {
	c.ValorMensalidade = trimPtr(c.ValorMensalidade)
	c.ValorSetup = trimPtr(c.ValorSetup)
	c.PlanoNome = trimPtr(c.PlanoNome)
	c.AssinanteVendaEmail = normalizeEmail(c.AssinanteVendaEmail)
}

func (c *UpdateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.ClienteID, uuidSet("ID do cliente inválido")),
		validation.Field(&c.ProjetoID, uuidSet("ID do projeto inválido")),
		validation.Field(&c.ValorMensalidade, validation.When(c.ValorMensalidade != nil,
			validation.Required.Error("Valor da mensalidade inválido"),
			validation.Match(valorPattern).Error("Valor da mensalidade inválido"),
		)),
		validation.Field(&c.ValorSetup, validation.When(c.ValorSetup != nil,
			validation.Required.Error("Valor do setup inválido"),
			validation.Match(valorPattern).Error("Valor do setup inválido"),
		)),
		validation.Field(&c.PlanoNome, validation.When(c.PlanoNome != nil,
			validation.Required.Error("Nome do plano deve ter pelo menos 3 caracteres"),
			validation.Length(3, 0).Error("Nome do plano deve ter pelo menos 3 caracteres"),
		)),
		validation.Field(&c.PrazoImplementacaoDias,
			validation.Min(1).Error("Prazo de implementação deve ser um número positivo"),
		),
		validation.Field(&c.AssinanteVendaEmail, is.EmailFormat.Error("Email do assinante inválido")),
	))
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*email))
	return &v
}
