package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

const dialectPostgres = "postgres"

// ErrEmptyPatch is returned by PatchSQL when no columns are set.
var ErrEmptyPatch = errors.New("patch has no columns")

// Patch collects the columns of a partial update. Nil pointers are skipped
// so absent JSON fields leave their column untouched.
type Patch map[string]any

// Set records column = value unconditionally.
func (p Patch) Set(column string, value any) Patch {
	p[column] = value
	return p
}

// SetIfPresent records column = *value when value is non-nil.
func SetIfPresent[T any](p Patch, column string, value *T) Patch {
	if value != nil {
		p[column] = *value
	}
	return p
}

// returningColumn quotes plain column names and passes expressions such
// as casts through verbatim.
func returningColumn(c string) any {
	if strings.ContainsAny(c, ":() ") {
		return goqu.L(c)
	}
	return goqu.C(c)
}

// PatchSQL renders a prepared UPDATE of schema.table for the row whose id
// column equals id, returning the listed columns.
func PatchSQL(schema, table string, id any, patch Patch, returning []string) (string, []any, error) {
	if len(patch) == 0 {
		return "", nil, ErrEmptyPatch
	}

	cols := make([]any, len(returning))
	for i, c := range returning {
		cols[i] = returningColumn(c)
	}

	ds := goqu.Dialect(dialectPostgres).
		Update(goqu.S(schema).Table(table)).
		Set(goqu.Record(patch)).
		Where(goqu.C("id").Eq(id)).
		Returning(cols...)

	q, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build update: %w", err)
	}
	return q, args, nil
}
