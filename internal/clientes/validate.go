package clientes

import (
	"strings"

	"github.com/JaimeStill/contratos/internal/cnpj"
	"github.com/JaimeStill/contratos/pkg/apperr"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var validCNPJ = validation.By(func(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	}
	if !cnpj.Validate(s) {
		return validation.NewError("validation_cnpj", "CNPJ inválido")
	}
	return nil
})

func razaoSocialRules(required bool) []validation.Rule {
	rules := []validation.Rule{
		validation.Length(3, 0).Error("Razão social deve ter pelo menos 3 caracteres"),
	}
	if required {
		rules = append([]validation.Rule{validation.Required.Error("Razão social é obrigatória")}, rules...)
	}
	return rules
}

func (c *CreateCommand) normalize() {
	c.RazaoSocial = strings.TrimSpace(c.RazaoSocial)
	c.CNPJ = strings.TrimSpace(c.CNPJ)
	c.AssinanteEmail = normalizeEmail(c.AssinanteEmail)
	c.FinanceiroEmail = normalizeEmail(c.FinanceiroEmail)
}

func (c *CreateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.RazaoSocial, razaoSocialRules(true)...),
		validation.Field(&c.CNPJ, validation.Required.Error("CNPJ é obrigatório"), validCNPJ),
		validation.Field(&c.AssinanteEmail, is.EmailFormat.Error("Email do assinante inválido")),
		validation.Field(&c.FinanceiroEmail, is.EmailFormat.Error("Email financeiro inválido")),
	))
}

func (c *UpdateCommand) normalize() {
	if c.RazaoSocial != nil {
		rs := strings.TrimSpace(*c.RazaoSocial)
		c.RazaoSocial = &rs
	}
	if c.CNPJ != nil {
		v := strings.TrimSpace(*c.CNPJ)
		c.CNPJ = &v
	}
	c.AssinanteEmail = normalizeEmail(c.AssinanteEmail)
	c.FinanceiroEmail = normalizeEmail(c.FinanceiroEmail)
}

func (c *UpdateCommand) validate() error {
	return apperr.FromValidation(validation.ValidateStruct(c,
		validation.Field(&c.RazaoSocial, validation.When(c.RazaoSocial != nil, razaoSocialRules(true)...)),
		validation.Field(&c.CNPJ, validation.When(c.CNPJ != nil, validation.Required.Error("CNPJ é obrigatório"), validCNPJ)),
		validation.Field(&c.AssinanteEmail, is.EmailFormat.Error("Email do assinante inválido")),
		validation.Field(&c.FinanceiroEmail, is.EmailFormat.Error("Email financeiro inválido")),
	))
}

// normalizeEmail lowercases and trims an optional email. Blank input is
// kept as an empty string so a patch can clear the column.
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*email))
	return &v
}
