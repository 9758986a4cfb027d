package contratos

import (
	"net/url"
	"strings"

	"github.com/JaimeStill/contratos/pkg/query"
	"github.com/google/uuid"
)

// Filters contains optional criteria for filtering contract queries.
type Filters struct {
	Status    []Status
	ClienteID *uuid.UUID
	ProjetoID *uuid.UUID
}

// FiltersFromQuery extracts contract filters from URL query parameters.
// status may repeat or hold a comma-separated list. Unknown statuses and
// malformed ids are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	for _, raw := range values["status"] {
		for part := range strings.SplitSeq(raw, ",") {
			if s := Status(strings.TrimSpace(part)); s.Valid() {
				f.Status = append(f.Status, s)
			}
		}
	}

	if id, err := uuid.Parse(values.Get("cliente_id")); err == nil {
		f.ClienteID = &id
	}

	if id, err := uuid.Parse(values.Get("projeto_id")); err == nil {
		f.ProjetoID = &id
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	statuses := make([]any, len(f.Status))
	for i, s := range f.Status {
		statuses[i] = string(s)
	}

	return b.
		WhereIn("Status", statuses).
		WhereEquals("ClienteID", f.ClienteID).
		WhereEquals("ProjetoID", f.ProjetoID)
}
