package projetos

import (
	"net/url"

	"github.com/JaimeStill/contratos/pkg/query"
)

// Filters contains optional criteria for filtering project queries.
type Filters struct {
	Nome *string
}

// FiltersFromQuery extracts project filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("nome_projeto"); n != "" {
		f.Nome = &n
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.WhereContains("NomeProjeto", f.Nome)
}
