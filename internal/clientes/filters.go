package clientes

import (
	"net/url"

	"github.com/JaimeStill/contratos/internal/cnpj"
	"github.com/JaimeStill/contratos/pkg/query"
)

// Filters contains optional criteria for filtering client queries.
type Filters struct {
	CNPJ        *string
	RazaoSocial *string
}

// FiltersFromQuery extracts client filters from URL query parameters.
// The cnpj filter is reduced to its digits so formatted input still matches.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := cnpj.Normalize(values.Get("cnpj")); c != "" {
		f.CNPJ = &c
	}

	if rs := values.Get("razao_social"); rs != "" {
		f.RazaoSocial = &rs
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("CNPJ", f.CNPJ).
		WhereContains("RazaoSocial", f.RazaoSocial)
}
