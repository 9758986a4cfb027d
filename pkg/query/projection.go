// Package query builds parameterized SELECT statements from projection maps.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names onto qualified SQL columns for a
// base table and any joined tables.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	joins   []string
	columns []string
	fields  map[string]string
}

// NewProjectionMap creates a projection for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project maps a base-table column to a view field.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	return p.ProjectFrom(p.alias, column, view)
}

// ProjectFrom maps a column of a joined alias to a view field.
func (p *ProjectionMap) ProjectFrom(alias, column, view string) *ProjectionMap {
	col := fmt.Sprintf("%s.%s", alias, column)
	p.columns = append(p.columns, col)
	p.fields[view] = col
	return p
}

// LeftJoin adds a LEFT JOIN of schema.table aliased as alias using the on condition.
func (p *ProjectionMap) LeftJoin(schema, table, alias, on string) *ProjectionMap {
	p.joins = append(p.joins, fmt.Sprintf("LEFT JOIN %s.%s %s ON %s", schema, table, alias, on))
	return p
}

// Table returns the FROM clause target including joins.
func (p *ProjectionMap) Table() string {
	from := fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
	if len(p.joins) == 0 {
		return from
	}
	return from + " " + strings.Join(p.joins, " ")
}

// Column resolves a view field. Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.fields[view]; ok {
		return col
	}
	return view
}

// Has reports whether view is a projected field.
func (p *ProjectionMap) Has(view string) bool {
	_, ok := p.fields[view]
	return ok
}

// Columns returns the projected columns as a SELECT list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// SortField names a view field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses "a,-b" into ascending a and descending b.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
			continue
		}
		fields = append(fields, SortField{Field: part})
	}
	return fields
}
